package mongo

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names follow the record field views so that filters apply unchanged.
type (
	transactionDocument struct {
		Kind      indexer.Kind   `bson:"kind"`
		Signature string         `bson:"signature"`
		Slot      int64          `bson:"slot"`
		BlockTime *int64         `bson:"blockTime"`
		Accounts  []string       `bson:"accounts"`
		ProgramID *string        `bson:"programId"`
		Success   bool           `bson:"success"`
		Fee       int64          `bson:"fee"`
		Timestamp time.Time      `bson:"timestamp"`
		Data      map[string]any `bson:"data,omitempty"`
	}

	// accountDocument stores RentEpoch as a decimal because rent exempt
	// accounts report the maximum uint64.
	accountDocument struct {
		Kind       indexer.Kind         `bson:"kind"`
		Address    string               `bson:"address"`
		Lamports   int64                `bson:"lamports"`
		Owner      string               `bson:"owner"`
		Executable bool                 `bson:"executable"`
		RentEpoch  primitive.Decimal128 `bson:"rentEpoch"`
		Data       []byte               `bson:"data"`
		Slot       int64                `bson:"slot"`
		Timestamp  time.Time            `bson:"timestamp"`
	}
)

func toDocument(r indexer.Record) (any, error) {
	switch r := r.(type) {
	case *indexer.IndexedTransaction:
		doc := transactionDocument{
			Kind:      indexer.KindTransaction,
			Signature: r.Signature,
			Slot:      int64(r.Slot),
			BlockTime: r.BlockTime,
			Accounts:  r.Accounts,
			Success:   r.Success,
			Fee:       int64(r.Fee),
			Timestamp: r.Timestamp,
			Data:      r.Data,
		}
		if r.ProgramID != "" {
			doc.ProgramID = &r.ProgramID
		}
		return doc, nil
	case *indexer.IndexedAccount:
		rentEpoch, err := primitive.ParseDecimal128(strconv.FormatUint(r.RentEpoch, 10))
		if err != nil {
			return nil, err
		}
		return accountDocument{
			Kind:       indexer.KindAccount,
			Address:    r.Address,
			Lamports:   int64(r.Lamports),
			Owner:      r.Owner,
			Executable: r.Executable,
			RentEpoch:  rentEpoch,
			Data:       r.Data,
			Slot:       int64(r.Slot),
			Timestamp:  r.Timestamp,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", indexer.ErrUnknownRecordKind, r)
	}
}

func fromDocument(raw bson.Raw) (indexer.Record, error) {
	kind, _ := raw.Lookup("kind").StringValueOK()

	switch indexer.Kind(kind) {
	case indexer.KindTransaction:
		var doc transactionDocument
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}

		t := &indexer.IndexedTransaction{
			Signature: doc.Signature,
			Slot:      uint64(doc.Slot),
			BlockTime: doc.BlockTime,
			Accounts:  doc.Accounts,
			Success:   doc.Success,
			Fee:       uint64(doc.Fee),
			Timestamp: doc.Timestamp.UTC(),
			Data:      doc.Data,
		}
		if doc.ProgramID != nil {
			t.ProgramID = *doc.ProgramID
		}
		return t, nil
	case indexer.KindAccount:
		var doc accountDocument
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}

		rentEpoch, err := decimalToUint64(doc.RentEpoch)
		if err != nil {
			return nil, err
		}

		return &indexer.IndexedAccount{
			Address:    doc.Address,
			Lamports:   uint64(doc.Lamports),
			Owner:      doc.Owner,
			Executable: doc.Executable,
			RentEpoch:  rentEpoch,
			Data:       doc.Data,
			Slot:       uint64(doc.Slot),
			Timestamp:  doc.Timestamp.UTC(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", indexer.ErrUnknownRecordKind, kind)
	}
}

func decimalToUint64(d primitive.Decimal128) (uint64, error) {
	coefficient, exp, err := d.BigInt()
	if err != nil {
		return 0, err
	}

	if exp > 0 {
		coefficient.Mul(coefficient, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	} else if exp < 0 {
		coefficient.Quo(coefficient, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil))
	}

	if !coefficient.IsUint64() {
		return 0, fmt.Errorf("decimal %s does not fit uint64", d.String())
	}
	return coefficient.Uint64(), nil
}

// toBSONFilter converts filter to a query document. Numbers become int64 when
// they fit, decimals otherwise; timestamps are unix milliseconds.
func toBSONFilter(filter indexer.Filter) (bson.M, error) {
	query := bson.M{}
	for field, v := range filter {
		switch v.Kind() {
		case indexer.NullKind:
			query[field] = nil
		case indexer.StringKind:
			query[field] = v.Str()
		case indexer.BoolKind:
			query[field] = v.Boolean()
		case indexer.NumberKind:
			text := v.String()
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				if field == "timestamp" {
					query[field] = time.UnixMilli(i).UTC()
				} else {
					query[field] = i
				}
				continue
			}

			d, err := primitive.ParseDecimal128(text)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", indexer.ErrInvalidValue, text)
			}
			query[field] = d
		}
	}
	return query, nil
}
