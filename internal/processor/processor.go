// Package processor provides reusable steps for the indexer processor chain.
// Transaction steps let account snapshots through unchanged, and the other
// way around, so the same chain can be registered in every mode.
package processor

import (
	"context"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// transactionStep adapts f into a Processor that only sees transactions.
func transactionStep(f func(tx *indexer.IndexedTransaction) (indexer.Record, error)) indexer.Processor {
	return func(_ context.Context, record indexer.Record, _ indexer.ProcessorContext) (indexer.Record, error) {
		tx, ok := record.(*indexer.IndexedTransaction)
		if !ok {
			return record, nil
		}
		return f(tx)
	}
}

// accountStep adapts f into a Processor that only sees account snapshots.
func accountStep(f func(account *indexer.IndexedAccount) (indexer.Record, error)) indexer.Processor {
	return func(_ context.Context, record indexer.Record, _ indexer.ProcessorContext) (indexer.Record, error) {
		account, ok := record.(*indexer.IndexedAccount)
		if !ok {
			return record, nil
		}
		return f(account)
	}
}

func setData(tx *indexer.IndexedTransaction, key string, value any) {
	if tx.Data == nil {
		tx.Data = make(map[string]any)
	}
	tx.Data[key] = value
}

// Compose returns a Processor running processors in order with the same
// short-circuit rules as the engine chain.
func Compose(processors ...indexer.Processor) indexer.Processor {
	chain := indexer.Chain(processors)
	return func(ctx context.Context, record indexer.Record, pctx indexer.ProcessorContext) (indexer.Record, error) {
		return chain.Run(ctx, record, pctx)
	}
}

// SuccessfulOnly drops failed transactions.
func SuccessfulOnly() indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		if !tx.Success {
			return nil, indexer.ErrDrop
		}
		return tx, nil
	})
}

// MinFee drops transactions paying less than threshold lamports. A zero fee
// means the fee is unknown and never satisfies the check.
func MinFee(threshold uint64) indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		if tx.Fee == 0 || tx.Fee < threshold {
			return nil, indexer.ErrDrop
		}
		return tx, nil
	})
}

// StripFee clears the fee of every transaction.
func StripFee() indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		tx.Fee = 0
		return tx, nil
	})
}

// FeeInSOL stores the fee converted to SOL under the "feeInSol" data key.
func FeeInSOL() indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		setData(tx, "feeInSol", float64(tx.Fee)/LamportsPerSOL)
		return tx, nil
	})
}

// Annotate stores value under key in the transaction data.
func Annotate(key string, value any) indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		setData(tx, key, value)
		return tx, nil
	})
}

// Enrich stores the number of referenced accounts under "accountCount" and
// the processing time in unix milliseconds under "processedAt".
func Enrich(now func() time.Time) indexer.Processor {
	return transactionStep(func(tx *indexer.IndexedTransaction) (indexer.Record, error) {
		setData(tx, "accountCount", len(tx.Accounts))
		setData(tx, "processedAt", now().UnixMilli())
		return tx, nil
	})
}

// HighFee keeps successful transactions paying at least threshold lamports
// and tags them with their fee in SOL and the "high-fee" category.
func HighFee(threshold uint64) indexer.Processor {
	return Compose(
		SuccessfulOnly(),
		MinFee(threshold),
		FeeInSOL(),
		Annotate("category", "high-fee"),
	)
}

// MinLamports drops account snapshots holding less than threshold lamports.
func MinLamports(threshold uint64) indexer.Processor {
	return accountStep(func(account *indexer.IndexedAccount) (indexer.Record, error) {
		if account.Lamports < threshold {
			return nil, indexer.ErrDrop
		}
		return account, nil
	})
}

// OwnedBy drops account snapshots whose owner program is not owner.
func OwnedBy(owner string) indexer.Processor {
	return accountStep(func(account *indexer.IndexedAccount) (indexer.Record, error) {
		if account.Owner != owner {
			return nil, indexer.ErrDrop
		}
		return account, nil
	})
}

// WithoutData clears the raw data of account snapshots.
func WithoutData() indexer.Processor {
	return accountStep(func(account *indexer.IndexedAccount) (indexer.Record, error) {
		account.Data = nil
		return account, nil
	})
}
