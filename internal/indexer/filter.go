package indexer

import (
	"fmt"
	"strings"
)

// Filter is an equality filter over record field names. A record matches
// when every key is present in its field view with an equal Value. An empty
// or nil Filter matches every record.
type Filter map[string]Value

// Match reports whether r satisfies every condition of f.
func (f Filter) Match(r Record) bool {
	if len(f) == 0 {
		return true
	}

	fields := r.Fields()
	for key, want := range f {
		got, ok := fields[key]
		if !ok || !got.Equal(want) {
			return false
		}
	}
	return true
}

// Kind returns the record kind the filter is restricted to, if any.
func (f Filter) Kind() (Kind, bool) {
	v, ok := f["kind"]
	if !ok || v.Kind() != StringKind {
		return "", false
	}
	return Kind(v.Str()), true
}

// Apply returns the records of rs matching f, preserving order.
func (f Filter) Apply(rs []Record) []Record {
	matched := make([]Record, 0, len(rs))
	for _, r := range rs {
		if f.Match(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// ParseFilter builds a Filter from "key=value" expressions, parsing each value with ParseValue.
func ParseFilter(exprs []string) (Filter, error) {
	f := make(Filter, len(exprs))
	for _, expr := range exprs {
		key, value, ok := strings.Cut(expr, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidValue, expr)
		}
		f[key] = ParseValue(value)
	}
	return f, nil
}
