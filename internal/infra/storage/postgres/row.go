package postgres

import (
	"encoding/json"
	"math/big"
	"strconv"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// transactionRow mirrors a row of the transactions table.
type transactionRow struct {
	Signature string
	Slot      int64
	BlockTime *int64
	Accounts  []string
	ProgramID *string
	Data      []byte
	Success   bool
	Fee       int64
	Timestamp time.Time
}

// accountRow mirrors a row of the accounts table. RentEpoch is read as text
// because it does not fit a BIGINT.
type accountRow struct {
	Address    string
	Lamports   int64
	Owner      string
	Executable bool
	RentEpoch  string
	Data       []byte
	Slot       int64
	Timestamp  time.Time
}

func transactionArgs(t *indexer.IndexedTransaction) ([]any, error) {
	var data []byte
	if len(t.Data) > 0 {
		encoded, err := json.Marshal(t.Data)
		if err != nil {
			return nil, err
		}
		data = encoded
	}

	var programID *string
	if t.ProgramID != "" {
		programID = &t.ProgramID
	}

	accounts := t.Accounts
	if accounts == nil {
		accounts = []string{}
	}

	return []any{
		t.Signature,
		int64(t.Slot),
		t.BlockTime,
		accounts,
		programID,
		data,
		t.Success,
		int64(t.Fee),
		t.Timestamp,
	}, nil
}

func accountArgs(a *indexer.IndexedAccount) []any {
	return []any{
		a.Address,
		int64(a.Lamports),
		a.Owner,
		a.Executable,
		pgtype.Numeric{Int: new(big.Int).SetUint64(a.RentEpoch), Valid: true},
		a.Data,
		int64(a.Slot),
		a.Timestamp,
	}
}

func (r transactionRow) toRecord() (*indexer.IndexedTransaction, error) {
	t := &indexer.IndexedTransaction{
		Signature: r.Signature,
		Slot:      uint64(r.Slot),
		BlockTime: r.BlockTime,
		Accounts:  r.Accounts,
		Success:   r.Success,
		Fee:       uint64(r.Fee),
		Timestamp: r.Timestamp.UTC(),
	}
	if r.ProgramID != nil {
		t.ProgramID = *r.ProgramID
	}
	if len(r.Data) > 0 && string(r.Data) != "null" {
		if err := json.Unmarshal(r.Data, &t.Data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (r accountRow) toRecord() (*indexer.IndexedAccount, error) {
	rentEpoch, err := strconv.ParseUint(r.RentEpoch, 10, 64)
	if err != nil {
		return nil, err
	}

	return &indexer.IndexedAccount{
		Address:    r.Address,
		Lamports:   uint64(r.Lamports),
		Owner:      r.Owner,
		Executable: r.Executable,
		RentEpoch:  rentEpoch,
		Data:       r.Data,
		Slot:       uint64(r.Slot),
		Timestamp:  r.Timestamp.UTC(),
	}, nil
}

func scanTransaction(row pgx.CollectableRow) (indexer.Record, error) {
	var r transactionRow
	if err := row.Scan(&r.Signature, &r.Slot, &r.BlockTime, &r.Accounts, &r.ProgramID, &r.Data, &r.Success, &r.Fee, &r.Timestamp); err != nil {
		return nil, err
	}

	t, err := r.toRecord()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanAccount(row pgx.CollectableRow) (indexer.Record, error) {
	var r accountRow
	if err := row.Scan(&r.Address, &r.Lamports, &r.Owner, &r.Executable, &r.RentEpoch, &r.Data, &r.Slot, &r.Timestamp); err != nil {
		return nil, err
	}

	a, err := r.toRecord()
	if err != nil {
		return nil, err
	}
	return a, nil
}
