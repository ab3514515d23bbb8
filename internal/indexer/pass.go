package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solindex/internal/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrPassPanicked wraps a panic recovered at the pass boundary.
var ErrPassPanicked = errors.New("indexing pass panicked")

// errSaveFailed marks storage errors returned by processAndSave.
var errSaveFailed = errors.New("save failed")

// passStats summarizes one pass for logging and tracing.
type passStats struct {
	saved         int
	dropped       int
	fetchFailures int
	saveFailures  int
}

// fail counts an aborted unit as a save or a fetch failure.
func (p *passStats) fail(err error) {
	if errors.Is(err, errSaveFailed) {
		p.saveFailures++
		return
	}
	p.fetchFailures++
}

// runPass executes one pass for the configured mode. Every failure is logged
// here; nothing escapes to the scheduler.
func (s *service) runPass(ctx context.Context) {
	mode := s.cfg.Mode()
	modeAttr := metric.WithAttributes(attribute.String("indexer.mode", string(mode)))

	passID, err := uuid.NewV7()
	if err != nil {
		passID = uuid.New()
	}

	ctx = logger.Derive(ctx, "pass.id", passID.String(), "indexer.mode", mode)
	ctx, span := s.instruments.tracer.Start(ctx, "indexer.pass", trace.WithAttributes(
		attribute.String("indexer.mode", string(mode)),
		attribute.String("pass.id", passID.String()),
	))
	defer span.End()

	var stats passStats
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrPassPanicked, r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error(ctx, "indexing pass failed", "error", err)
		}

		s.instruments.passes.Add(ctx, 1, modeAttr)
		s.instruments.saved.Add(ctx, int64(stats.saved), modeAttr)
		s.instruments.dropped.Add(ctx, int64(stats.dropped), modeAttr)
		s.instruments.fetchFailures.Add(ctx, int64(stats.fetchFailures), modeAttr)
		s.instruments.saveFailures.Add(ctx, int64(stats.saveFailures), modeAttr)
		span.SetAttributes(
			attribute.Int("records.saved", stats.saved),
			attribute.Int("records.dropped", stats.dropped),
			attribute.Int("fetch.failures", stats.fetchFailures),
			attribute.Int("save.failures", stats.saveFailures),
		)
	}()

	ledger := s.provider.Connection()
	pctx := ProcessorContext{Connection: ledger, Config: s.cfg.clone()}

	switch target := s.cfg.Target.(type) {
	case AccountTarget:
		s.indexAccounts(ctx, ledger, pctx, target.Addresses, &stats)
	case TransactionTarget:
		if len(target.Addresses) == 0 {
			logger.Warn(ctx, "no accounts configured for transaction indexing")
			return
		}
		s.indexTransactions(ctx, ledger, pctx, target.Addresses, "", &stats)
	case ProgramTarget:
		s.indexTransactions(ctx, ledger, pctx, []string{target.ProgramID}, target.ProgramID, &stats)
	}

	logger.Debug(ctx, "indexing pass finished",
		"records.saved", stats.saved,
		"records.dropped", stats.dropped,
		"fetch.failures", stats.fetchFailures,
		"save.failures", stats.saveFailures,
	)
}

// fetch runs a ledger lookup, through the configured retry policy if any.
func (s *service) fetch(ctx context.Context, lookup func() error) error {
	if s.retry == nil {
		return lookup()
	}
	return s.retry.Execute(ctx, lookup)
}

// indexAccounts snapshots every address. A failing address is logged and skipped.
func (s *service) indexAccounts(ctx context.Context, ledger Ledger, pctx ProcessorContext, addresses []string, stats *passStats) {
	for _, address := range addresses {
		actx := logger.Derive(ctx, "account.address", address)

		if err := s.indexAccount(actx, ledger, pctx, address, stats); err != nil {
			stats.fail(err)
			logger.Error(actx, "failed to index account", "error", err)
		}
	}
}

func (s *service) indexAccount(ctx context.Context, ledger Ledger, pctx ProcessorContext, address string, stats *passStats) error {
	var (
		info    AccountInfo
		missing bool
	)
	if err := s.fetch(ctx, func() (err error) {
		info, err = ledger.GetAccountInfo(ctx, address)
		missing = errors.Is(err, ErrAccountNotFound)
		if missing {
			return nil
		}
		return err
	}); err != nil {
		return fmt.Errorf("get account info: %w", err)
	}

	if missing {
		logger.Debug(ctx, "account not found, skipping")
		return nil
	}

	var slot uint64
	if err := s.fetch(ctx, func() (err error) {
		slot, err = ledger.GetSlot(ctx)
		return err
	}); err != nil {
		return fmt.Errorf("get slot: %w", err)
	}

	record := &IndexedAccount{
		Address:    address,
		Lamports:   info.Lamports,
		Owner:      info.Owner,
		Executable: info.Executable,
		RentEpoch:  info.RentEpoch,
		Data:       info.Data,
		Slot:       slot,
		Timestamp:  s.now(),
	}

	if err := s.processAndSave(ctx, record, pctx, stats); err != nil {
		return err
	}

	logger.Debug(ctx, "indexed account", "account.slot", slot)
	return nil
}

// indexTransactions walks the signature history of every address, sharing a
// single cursor between them. A failing address is logged and skipped.
func (s *service) indexTransactions(ctx context.Context, ledger Ledger, pctx ProcessorContext, addresses []string, programID string, stats *passStats) {
	for _, address := range addresses {
		actx := logger.Derive(ctx, "account.address", address)

		if err := s.indexAddressTransactions(actx, ledger, pctx, address, programID, stats); err != nil {
			stats.fail(err)
			logger.Error(actx, "failed to index transactions", "error", err)
		}
	}
}

// indexAddressTransactions fetches up to BatchSize signatures older than the
// cursor, processes them oldest first and then moves the cursor to the newest
// one. The cursor is left untouched when the batch is aborted by a storage error.
func (s *service) indexAddressTransactions(ctx context.Context, ledger Ledger, pctx ProcessorContext, address, programID string, stats *passStats) error {
	cursor := s.cursor.Load()

	var signatures []SignatureInfo
	if err := s.fetch(ctx, func() (err error) {
		signatures, err = ledger.GetSignaturesForAddress(ctx, address, s.cfg.BatchSize, cursor.LastSignature)
		return err
	}); err != nil {
		return fmt.Errorf("get signatures: %w", err)
	}

	if len(signatures) == 0 {
		return nil
	}

	for i := len(signatures) - 1; i >= 0; i-- {
		signature := signatures[i].Signature
		sctx := logger.Derive(ctx, "transaction.signature", signature)

		var (
			tx      TransactionInfo
			missing bool
		)
		err := s.fetch(sctx, func() (err error) {
			tx, err = ledger.GetTransaction(sctx, signature)
			missing = errors.Is(err, ErrTransactionNotFound)
			if missing {
				return nil
			}
			return err
		})

		switch {
		case err != nil:
			stats.fetchFailures++
			logger.Error(sctx, "failed to fetch transaction", "error", err)
			continue
		case missing:
			logger.Debug(sctx, "transaction not found, skipping")
			continue
		}

		if err := s.processAndSave(sctx, newIndexedTransaction(signature, programID, tx), pctx, stats); err != nil {
			return err
		}

		logger.Debug(sctx, "indexed transaction", "transaction.short", ShortenAddress(signature, 8))
	}

	newest := signatures[0]
	s.cursor.Store(Cursor{LastSignature: newest.Signature, LastSlot: newest.Slot})
	return nil
}

func newIndexedTransaction(signature, programID string, tx TransactionInfo) *IndexedTransaction {
	record := &IndexedTransaction{
		Signature: signature,
		Slot:      tx.Slot,
		BlockTime: tx.BlockTime,
		Accounts:  tx.AccountKeys,
		ProgramID: programID,
		Timestamp: time.UnixMilli(0).UTC(),
	}

	if tx.Meta != nil {
		record.Success = !tx.Meta.Failed
		record.Fee = tx.Meta.Fee
	}

	if tx.BlockTime != nil {
		record.Timestamp = time.Unix(*tx.BlockTime, 0).UTC()
	}

	return record
}

// processAndSave runs record through the chain and saves the result.
// Drops and processor failures are recorded and swallowed; storage errors are returned.
func (s *service) processAndSave(ctx context.Context, record Record, pctx ProcessorContext, stats *passStats) error {
	processed, err := s.chain.Run(ctx, record, pctx)
	if errors.Is(err, ErrDrop) {
		stats.dropped++
		logger.Debug(ctx, "record dropped by processor chain", "record.kind", record.Kind())
		return nil
	}
	if err != nil {
		stats.dropped++
		logger.Error(ctx, "processor failed, skipping record", "record.kind", record.Kind(), "error", err)
		return nil
	}

	if err := s.storage.Save(ctx, processed); err != nil {
		return fmt.Errorf("%w: %s: %w", errSaveFailed, processed.Kind(), err)
	}

	stats.saved++
	return nil
}
