package postgres

import (
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/types"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrUnsupportedFilter is returned when a filter names a field that has no column.
var ErrUnsupportedFilter = errors.New("unsupported filter field")

// filterable lists the record fields that can be queried, per table.
var filterable = map[indexer.Kind]types.Set[string]{
	indexer.KindTransaction: types.NewSet("signature", "slot", "blockTime", "programId", "success", "fee", "timestamp"),
	indexer.KindAccount:     types.NewSet("address", "lamports", "owner", "executable", "rentEpoch", "slot", "timestamp"),
}

// column converts a record field name to its column name: blockTime becomes block_time.
func column(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildQuery translates filter into a SELECT on the table of the requested
// kind. The "kind" field selects the table and defaults to transactions.
func buildQuery(filter indexer.Filter) (indexer.Kind, string, []any, error) {
	kind := indexer.KindTransaction
	if v, ok := filter["kind"]; ok {
		k, isString := filter.Kind()
		if !isString || (k != indexer.KindTransaction && k != indexer.KindAccount) {
			return "", "", nil, fmt.Errorf("%w: %q", indexer.ErrUnknownRecordKind, v.String())
		}
		kind = k
	}

	query := selectTransactions
	if kind == indexer.KindAccount {
		query = selectAccounts
	}

	var (
		conditions []string
		args       []any
	)
	for _, field := range slices.Sorted(maps.Keys(filter)) {
		if field == "kind" {
			continue
		}
		if !filterable[kind].Has(field) {
			return "", "", nil, fmt.Errorf("%w: %s records have no %q column", ErrUnsupportedFilter, kind, field)
		}

		col := column(field)
		value := filter[field]
		if value.IsNull() {
			conditions = append(conditions, col+" IS NULL")
			continue
		}

		arg, err := argument(field, value)
		if err != nil {
			return "", "", nil, err
		}
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY slot, timestamp"

	return kind, query, args, nil
}

// argument converts a filter value to a query argument. Timestamps are
// compared as unix milliseconds.
func argument(field string, v indexer.Value) (any, error) {
	switch v.Kind() {
	case indexer.StringKind:
		return v.Str(), nil
	case indexer.BoolKind:
		return v.Boolean(), nil
	}

	text := v.String()
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		if field == "timestamp" {
			return time.UnixMilli(i).UTC(), nil
		}
		return i, nil
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return pgtype.Numeric{Int: new(big.Int).SetUint64(u), Valid: true}, nil
	}
	if field == "timestamp" {
		return nil, fmt.Errorf("%w: timestamp %s is not whole milliseconds", indexer.ErrInvalidValue, text)
	}
	return v.Float64(), nil
}
