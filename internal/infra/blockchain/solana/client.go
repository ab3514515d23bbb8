// Package solana implements indexer.Ledger and indexer.RPCProvider for Solana
// nodes. Requests go through the generic JSON-RPC client in
// internal/pkg/transport/jsonrpc.
package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/transport/jsonrpc"

	"github.com/blocto/solana-go-sdk/rpc"
)

// ErrUnexpectedEncoding is returned when account data is not base64 encoded.
var ErrUnexpectedEncoding = errors.New("unexpected account data encoding")

// commitment is the confirmation level used by every read.
const commitment = rpc.CommitmentConfirmed

// legacyAndV0 accepts legacy and version 0 transactions.
var legacyAndV0 uint8 = 0

type (
	// accountInfoResponse is the getAccountInfo result. Value is nil for unknown accounts.
	accountInfoResponse rpc.ValueWithContext[*rpc.AccountInfo]

	// transactionResponse is a getTransaction result in json encoding. Its
	// Transaction field replaces the untyped one of rpc.GetTransaction.
	transactionResponse struct {
		rpc.GetTransaction
		Transaction struct {
			Message struct {
				AccountKeys []string `json:"accountKeys"`
			} `json:"message"`
		} `json:"transaction"`
	}
)

// toAccountInfo converts a base64 encoded account to an indexer.AccountInfo.
// The data field is a [payload, encoding] pair.
func toAccountInfo(a *rpc.AccountInfo) (indexer.AccountInfo, error) {
	pair, ok := a.Data.([]any)
	if !ok || len(pair) != 2 {
		return indexer.AccountInfo{}, fmt.Errorf("%w: %v", ErrUnexpectedEncoding, a.Data)
	}

	payload, _ := pair[0].(string)
	if encoding, _ := pair[1].(string); encoding != string(rpc.AccountEncodingBase64) {
		return indexer.AccountInfo{}, fmt.Errorf("%w: %q", ErrUnexpectedEncoding, encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return indexer.AccountInfo{}, err
	}

	return indexer.AccountInfo{
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
		RentEpoch:  a.RentEpoch,
		Data:       data,
	}, nil
}

// toTransactionInfo converts a transactionResponse to an indexer.TransactionInfo.
// Addresses loaded from lookup tables follow the static account keys.
func (t transactionResponse) toTransactionInfo() indexer.TransactionInfo {
	info := indexer.TransactionInfo{
		Slot:        t.Slot,
		BlockTime:   t.BlockTime,
		AccountKeys: t.Transaction.Message.AccountKeys,
	}

	if meta := t.Meta; meta != nil {
		info.Meta = &indexer.TransactionMeta{
			Failed: meta.Err != nil,
			Fee:    meta.Fee,
		}

		loaded := meta.LoadedAddresses
		if len(loaded.Writable)+len(loaded.Readonly) > 0 {
			keys := make([]string, 0, len(info.AccountKeys)+len(loaded.Writable)+len(loaded.Readonly))
			keys = append(keys, info.AccountKeys...)
			keys = append(keys, loaded.Writable...)
			keys = append(keys, loaded.Readonly...)
			info.AccountKeys = keys
		}
	}

	return info
}

// client implements indexer.Ledger over a JSON-RPC connection to a Solana node.
type client struct {
	conn jsonrpc.Client
}

var _ indexer.Ledger = (*client)(nil)

// NewClient creates a ledger client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

func (c *client) GetAccountInfo(ctx context.Context, address string) (indexer.AccountInfo, error) {
	data, err := c.conn.Fetch(ctx, "getAccountInfo", address, rpc.GetAccountInfoConfig{
		Encoding:   rpc.AccountEncodingBase64,
		Commitment: commitment,
	})
	if err != nil {
		return indexer.AccountInfo{}, err
	}

	var res accountInfoResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return indexer.AccountInfo{}, err
	}

	if res.Value == nil {
		return indexer.AccountInfo{}, indexer.ErrAccountNotFound
	}

	return toAccountInfo(res.Value)
}

func (c *client) GetSlot(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "getSlot", rpc.GetSlotConfig{Commitment: commitment})
	if err != nil {
		return 0, err
	}

	var slot uint64
	return slot, json.Unmarshal(data, &slot)
}

func (c *client) GetSignaturesForAddress(ctx context.Context, address string, limit int, before string) ([]indexer.SignatureInfo, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address, rpc.GetSignaturesForAddressConfig{
		Limit:      limit,
		Before:     before,
		Commitment: commitment,
	})
	if err != nil {
		return nil, err
	}

	var res rpc.GetSignaturesForAddress
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	signatures := make([]indexer.SignatureInfo, len(res))
	for i, s := range res {
		signatures[i] = indexer.SignatureInfo{
			Signature: s.Signature,
			Slot:      s.Slot,
			BlockTime: s.BlockTime,
		}
	}

	return signatures, nil
}

func (c *client) GetTransaction(ctx context.Context, signature string) (indexer.TransactionInfo, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature, rpc.GetTransactionConfig{
		Encoding:                       rpc.TransactionEncodingJson,
		Commitment:                     commitment,
		MaxSupportedTransactionVersion: &legacyAndV0,
	})
	if err != nil {
		return indexer.TransactionInfo{}, err
	}

	if len(data) == 0 || string(data) == "null" {
		return indexer.TransactionInfo{}, indexer.ErrTransactionNotFound
	}

	var res transactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return indexer.TransactionInfo{}, err
	}

	return res.toTransactionInfo(), nil
}

func (c *client) GetVersion(ctx context.Context) (string, error) {
	data, err := c.conn.Fetch(ctx, "getVersion")
	if err != nil {
		return "", err
	}

	var res rpc.GetVersion
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}

	return res.SolanaCore, nil
}
