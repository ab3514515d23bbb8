package solana

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gabapcia/solindex/internal/indexer"
	jsonrpctest "github.com/gabapcia/solindex/internal/pkg/transport/jsonrpc/mocks"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	wrappedSOL   = "So11111111111111111111111111111111111111112"
	tokenProgram = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	wallet       = "8RBsoeyoRwajj86MZfZE6gMDJQVYGYcdSfx1zxqxNHbr"
	lookupTable  = "67WKXSxm4oc149PvQjdXLacKFZpK5DyYdqBwpiVydJbb"
	signature    = "4gXrHw1dqafC4Vo2RTmHpRK3d3x8aYXLg81BtsMBWrWgQu9n45JWDMTM5yGhR1Ug1Reo4sFi4apJe9Zmoexx9Tc9"
	signature2   = "3U1tFA9PdfkqMUAM3bDBW7stNbRSUFmxuc4LBu2chsgaGHSafbB1i3oLREKrtbGRTRH9YeDrV2GnbhYLofE6rW3S"
)

func TestNewClient(t *testing.T) {
	mockConn := jsonrpctest.NewClient(t)
	c := NewClient(mockConn)

	assert.NotNil(t, c)
	assert.Equal(t, mockConn, c.conn)
}

func TestClient_GetAccountInfo(t *testing.T) {
	expectedConfig := rpc.GetAccountInfoConfig{Encoding: rpc.AccountEncodingBase64, Commitment: rpc.CommitmentConfirmed}

	t.Run("decodes the account", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getAccountInfo", wallet, expectedConfig).
			Return(json.RawMessage(`{
				"context": {"slot": 250000000},
				"value": {
					"data": ["3q2+7w==", "base64"],
					"executable": false,
					"lamports": 2039280,
					"owner": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
					"rentEpoch": 18446744073709551615,
					"space": 4
				}
			}`), nil).Once()

		info, err := NewClient(mockConn).GetAccountInfo(t.Context(), wallet)
		require.NoError(t, err)

		assert.Equal(t, indexer.AccountInfo{
			Lamports:  2039280,
			Owner:     tokenProgram,
			RentEpoch: 18446744073709551615,
			Data:      []byte{0xde, 0xad, 0xbe, 0xef},
		}, info)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getAccountInfo", wallet, expectedConfig).
			Return(json.RawMessage(`{"context":{"slot":1},"value":null}`), nil).Once()

		_, err := NewClient(mockConn).GetAccountInfo(t.Context(), wallet)
		assert.ErrorIs(t, err, indexer.ErrAccountNotFound)
	})

	t.Run("data is not a pair", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getAccountInfo", wallet, expectedConfig).
			Return(json.RawMessage(`{"value":{"data":{"parsed":{}},"lamports":1}}`), nil).Once()

		_, err := NewClient(mockConn).GetAccountInfo(t.Context(), wallet)
		assert.ErrorIs(t, err, ErrUnexpectedEncoding)
	})

	t.Run("unexpected encoding", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getAccountInfo", wallet, expectedConfig).
			Return(json.RawMessage(`{"value":{"data":["abc","base58"],"lamports":1}}`), nil).Once()

		_, err := NewClient(mockConn).GetAccountInfo(t.Context(), wallet)
		assert.ErrorIs(t, err, ErrUnexpectedEncoding)
	})

	t.Run("transport error", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		fetchErr := errors.New("connection reset")
		mockConn.EXPECT().Fetch(mock.Anything, "getAccountInfo", wallet, expectedConfig).
			Return(nil, fetchErr).Once()

		_, err := NewClient(mockConn).GetAccountInfo(t.Context(), wallet)
		assert.ErrorIs(t, err, fetchErr)
	})
}

func TestClient_GetSlot(t *testing.T) {
	t.Run("returns the slot", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getSlot", rpc.GetSlotConfig{Commitment: rpc.CommitmentConfirmed}).
			Return(json.RawMessage(`250000000`), nil).Once()

		slot, err := NewClient(mockConn).GetSlot(t.Context())
		require.NoError(t, err)
		assert.Equal(t, uint64(250_000_000), slot)
	})

	t.Run("invalid payload", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getSlot", mock.Anything).
			Return(json.RawMessage(`"abc"`), nil).Once()

		_, err := NewClient(mockConn).GetSlot(t.Context())
		assert.Error(t, err)
	})
}

func TestClient_GetSignaturesForAddress(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getSignaturesForAddress", wallet, rpc.GetSignaturesForAddressConfig{Limit: 100, Commitment: rpc.CommitmentConfirmed}).
			Return(json.RawMessage(`[
				{"signature": "`+signature2+`", "slot": 200, "blockTime": 1700000200, "err": null, "memo": null, "confirmationStatus": "finalized"},
				{"signature": "`+signature+`", "slot": 100, "blockTime": null, "err": {"InstructionError": [0, "Custom"]}}
			]`), nil).Once()

		signatures, err := NewClient(mockConn).GetSignaturesForAddress(t.Context(), wallet, 100, "")
		require.NoError(t, err)

		blockTime := int64(1_700_000_200)
		assert.Equal(t, []indexer.SignatureInfo{
			{Signature: signature2, Slot: 200, BlockTime: &blockTime},
			{Signature: signature, Slot: 100},
		}, signatures)
	})

	t.Run("older page", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getSignaturesForAddress", wallet, rpc.GetSignaturesForAddressConfig{Limit: 10, Before: signature2, Commitment: rpc.CommitmentConfirmed}).
			Return(json.RawMessage(`[]`), nil).Once()

		signatures, err := NewClient(mockConn).GetSignaturesForAddress(t.Context(), wallet, 10, signature2)
		require.NoError(t, err)
		assert.Empty(t, signatures)
	})

	t.Run("request omits empty cursor", func(t *testing.T) {
		body, err := json.Marshal(rpc.GetSignaturesForAddressConfig{Limit: 5, Commitment: rpc.CommitmentConfirmed})
		require.NoError(t, err)
		assert.JSONEq(t, `{"limit":5,"commitment":"confirmed"}`, string(body))
	})
}

func TestClient_GetTransaction(t *testing.T) {
	version := uint8(0)
	expectedConfig := rpc.GetTransactionConfig{
		Encoding:                       rpc.TransactionEncodingJson,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &version,
	}

	t.Run("request accepts versioned transactions", func(t *testing.T) {
		body, err := json.Marshal(expectedConfig)
		require.NoError(t, err)
		assert.JSONEq(t, `{"encoding":"json","commitment":"confirmed","maxSupportedTransactionVersion":0}`, string(body))
	})

	t.Run("successful versioned transaction", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getTransaction", signature, expectedConfig).
			Return(json.RawMessage(`{
				"slot": 100,
				"blockTime": 1700000100,
				"version": 0,
				"meta": {
					"err": null,
					"fee": 5000,
					"loadedAddresses": {"writable": ["`+lookupTable+`"], "readonly": []}
				},
				"transaction": {
					"signatures": ["`+signature+`"],
					"message": {"accountKeys": ["`+wallet+`", "`+tokenProgram+`"]}
				}
			}`), nil).Once()

		tx, err := NewClient(mockConn).GetTransaction(t.Context(), signature)
		require.NoError(t, err)

		blockTime := int64(1_700_000_100)
		assert.Equal(t, indexer.TransactionInfo{
			Slot:        100,
			BlockTime:   &blockTime,
			AccountKeys: []string{wallet, tokenProgram, lookupTable},
			Meta:        &indexer.TransactionMeta{Fee: 5000},
		}, tx)
	})

	t.Run("failed legacy transaction", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getTransaction", signature, expectedConfig).
			Return(json.RawMessage(`{
				"slot": 100,
				"blockTime": null,
				"meta": {"err": {"InstructionError": [1, {"Custom": 6001}]}, "fee": 5000},
				"transaction": {"message": {"accountKeys": ["`+wallet+`"]}}
			}`), nil).Once()

		tx, err := NewClient(mockConn).GetTransaction(t.Context(), signature)
		require.NoError(t, err)

		assert.Nil(t, tx.BlockTime)
		assert.Equal(t, []string{wallet}, tx.AccountKeys)
		require.NotNil(t, tx.Meta)
		assert.True(t, tx.Meta.Failed)
	})

	t.Run("transaction without metadata", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getTransaction", signature, expectedConfig).
			Return(json.RawMessage(`{"slot": 100, "meta": null, "transaction": {"message": {"accountKeys": []}}}`), nil).Once()

		tx, err := NewClient(mockConn).GetTransaction(t.Context(), signature)
		require.NoError(t, err)
		assert.Nil(t, tx.Meta)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getTransaction", signature, expectedConfig).
			Return(json.RawMessage(`null`), nil).Once()

		_, err := NewClient(mockConn).GetTransaction(t.Context(), signature)
		assert.ErrorIs(t, err, indexer.ErrTransactionNotFound)
	})
}

func TestClient_GetVersion(t *testing.T) {
	t.Run("returns the core version", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getVersion").
			Return(json.RawMessage(`{"feature-set": 3746964731, "solana-core": "1.18.22"}`), nil).Once()

		version, err := NewClient(mockConn).GetVersion(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "1.18.22", version)
	})

	t.Run("node error", func(t *testing.T) {
		mockConn := jsonrpctest.NewClient(t)
		mockConn.EXPECT().Fetch(mock.Anything, "getVersion").
			Return(nil, errors.New("node is behind")).Once()

		_, err := NewClient(mockConn).GetVersion(t.Context())
		assert.Error(t, err)
	})
}
