package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownRecordKind is returned when decoding a record of an unsupported kind.
var ErrUnknownRecordKind = errors.New("unknown record kind")

// Kind identifies the concrete type of a Record.
type Kind string

const (
	KindAccount     Kind = "account"
	KindTransaction Kind = "transaction"
)

// Record is a unit of indexed data flowing through the processor chain into
// storage. It is implemented only by *IndexedAccount and *IndexedTransaction.
type Record interface {
	// Kind returns the record discriminant.
	Kind() Kind

	// Fields returns the comparable view of the record used by filters.
	// Every view contains a "kind" field.
	Fields() map[string]Value

	isRecord()
}

// IndexedAccount is a point-in-time snapshot of an account.
type IndexedAccount struct {
	Address    string    `json:"address"`
	Lamports   uint64    `json:"lamports"`
	Owner      string    `json:"owner"`
	Executable bool      `json:"executable"`
	RentEpoch  uint64    `json:"rentEpoch"`
	Data       []byte    `json:"data"`
	Slot       uint64    `json:"slot"`
	Timestamp  time.Time `json:"timestamp"` // observation time
}

// IndexedTransaction is a transaction observed for an address or program.
// Signature is its natural key.
type IndexedTransaction struct {
	Signature string         `json:"signature"`
	Slot      uint64         `json:"slot"`
	BlockTime *int64         `json:"blockTime"` // unix seconds; nil when unknown
	Accounts  []string       `json:"accounts"`
	ProgramID string         `json:"programId,omitempty"` // set in program mode only
	Success   bool           `json:"success"`
	Fee       uint64         `json:"fee"`
	Timestamp time.Time      `json:"timestamp"` // block time, or the unix epoch when unknown
	Data      map[string]any `json:"data,omitempty"` // payload attached by processors
}

var (
	_ Record = (*IndexedAccount)(nil)
	_ Record = (*IndexedTransaction)(nil)
)

func (*IndexedAccount) Kind() Kind     { return KindAccount }
func (*IndexedTransaction) Kind() Kind { return KindTransaction }

func (*IndexedAccount) isRecord()     {}
func (*IndexedTransaction) isRecord() {}

func (a *IndexedAccount) Fields() map[string]Value {
	return map[string]Value{
		"kind":       String(string(KindAccount)),
		"address":    String(a.Address),
		"lamports":   Uint(a.Lamports),
		"owner":      String(a.Owner),
		"executable": Bool(a.Executable),
		"rentEpoch":  Uint(a.RentEpoch),
		"slot":       Uint(a.Slot),
		"timestamp":  Int(a.Timestamp.UnixMilli()),
	}
}

func (t *IndexedTransaction) Fields() map[string]Value {
	fields := map[string]Value{
		"kind":      String(string(KindTransaction)),
		"signature": String(t.Signature),
		"slot":      Uint(t.Slot),
		"blockTime": Null(),
		"programId": Null(),
		"success":   Bool(t.Success),
		"fee":       Uint(t.Fee),
		"timestamp": Int(t.Timestamp.UnixMilli()),
	}
	if t.BlockTime != nil {
		fields["blockTime"] = Int(*t.BlockTime)
	}
	if t.ProgramID != "" {
		fields["programId"] = String(t.ProgramID)
	}
	return fields
}

// envelope is the self-describing JSON form of a Record.
type envelope struct {
	Kind   Kind            `json:"kind"`
	Record json.RawMessage `json:"record"`
}

// MarshalRecord encodes r together with its kind so it can be decoded by UnmarshalRecord.
func MarshalRecord(r Record) ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{Kind: r.Kind(), Record: body})
}

// UnmarshalRecord decodes data produced by MarshalRecord.
func UnmarshalRecord(data []byte) (Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	var r Record
	switch env.Kind {
	case KindAccount:
		r = &IndexedAccount{}
	case KindTransaction:
		r = &IndexedTransaction{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordKind, env.Kind)
	}

	if err := json.Unmarshal(env.Record, r); err != nil {
		return nil, err
	}
	return r, nil
}
