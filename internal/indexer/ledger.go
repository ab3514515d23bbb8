package indexer

import (
	"context"
	"errors"
)

var (
	// ErrAccountNotFound is returned by Ledger.GetAccountInfo when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned by Ledger.GetTransaction when the
	// transaction is unknown or not yet available at the requested commitment.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// AccountInfo is the state of an account as reported by the ledger.
type AccountInfo struct {
	Lamports   uint64
	Owner      string
	Executable bool
	RentEpoch  uint64
	Data       []byte
}

// SignatureInfo is one entry of an address's signature history.
type SignatureInfo struct {
	Signature string
	Slot      uint64
	BlockTime *int64
}

// TransactionMeta holds the execution outcome of a transaction.
type TransactionMeta struct {
	Failed bool
	Fee    uint64
}

// TransactionInfo is a confirmed transaction. Meta is nil when the ledger
// did not report execution metadata.
type TransactionInfo struct {
	Slot        uint64
	BlockTime   *int64
	AccountKeys []string
	Meta        *TransactionMeta
}

// Ledger is the read-only view of the remote ledger used by passes and processors.
type Ledger interface {
	// GetAccountInfo returns the current state of address, or ErrAccountNotFound.
	GetAccountInfo(ctx context.Context, address string) (AccountInfo, error)

	// GetSlot returns the current slot.
	GetSlot(ctx context.Context) (uint64, error)

	// GetSignaturesForAddress returns up to limit signatures involving address,
	// newest first. When before is not empty only signatures older than it are returned.
	GetSignaturesForAddress(ctx context.Context, address string, limit int, before string) ([]SignatureInfo, error)

	// GetTransaction returns the transaction identified by signature, or ErrTransactionNotFound.
	GetTransaction(ctx context.Context, signature string) (TransactionInfo, error)

	// GetVersion returns the node software version. It is used as a health probe.
	GetVersion(ctx context.Context) (string, error)
}

// RPCProvider owns the connection to the ledger.
type RPCProvider interface {
	// Connection returns the live ledger handle. The handle may be replaced by
	// EnsureConnected, so callers should not cache it across passes.
	Connection() Ledger

	// Endpoint returns the resolved endpoint URL.
	Endpoint() string

	// EnsureConnected blocks until the ledger answers a health probe,
	// reconnecting with a capped exponential backoff in between.
	EnsureConnected(ctx context.Context) error
}
