package indexer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a JSON value is not a string, number, boolean or null.
var ErrInvalidValue = errors.New("invalid filter value")

// ValueKind enumerates the comparable kinds a Value can hold.
type ValueKind uint8

const (
	NullKind ValueKind = iota
	StringKind
	NumberKind
	BoolKind
)

func (k ValueKind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	default:
		return "null"
	}
}

// Value is a comparable scalar used by filters and record field views.
// Numbers are kept in canonical decimal form so that large integers such as
// lamport balances compare exactly.
type Value struct {
	kind ValueKind
	text string // string payload or canonical number
	b    bool
}

// Null returns the null Value.
func Null() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: StringKind, text: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Uint returns a number Value holding u exactly.
func Uint(u uint64) Value { return Value{kind: NumberKind, text: strconv.FormatUint(u, 10)} }

// Int returns a number Value holding i exactly.
func Int(i int64) Value { return Value{kind: NumberKind, text: strconv.FormatInt(i, 10)} }

// Float returns a number Value holding f.
func Float(f float64) Value { return Value{kind: NumberKind, text: canonicalNumber(strconv.FormatFloat(f, 'f', -1, 64))} }

// Number parses s as a decimal number.
func Number(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}
	return Value{kind: NumberKind, text: canonicalNumber(s)}, nil
}

// canonicalNumber normalizes integral representations ("5000", "5000.0", "5e3")
// to the same text. s must already parse as a float.
func canonicalNumber(s string) string {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, _ := strconv.ParseFloat(s, 64)
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Kind returns the kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == NullKind }

// Str returns the string payload; empty for other kinds.
func (v Value) Str() string {
	if v.kind != StringKind {
		return ""
	}
	return v.text
}

// Boolean returns the boolean payload; false for other kinds.
func (v Value) Boolean() bool { return v.kind == BoolKind && v.b }

// Float64 returns the numeric payload; zero for other kinds.
func (v Value) Float64() float64 {
	if v.kind != NumberKind {
		return 0
	}
	f, _ := strconv.ParseFloat(v.text, 64)
	return f
}

// Equal reports whether v and o have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolKind:
		return v.b == o.b
	case NullKind:
		return true
	default:
		return v.text == o.text
	}
}

// Any returns the Go representation of v: nil, string, bool, or a json.Number.
func (v Value) Any() any {
	switch v.kind {
	case StringKind:
		return v.text
	case NumberKind:
		return json.Number(v.text)
	case BoolKind:
		return v.b
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case StringKind, NumberKind:
		return v.text
	case BoolKind:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case StringKind:
		return json.Marshal(v.text)
	case NumberKind:
		return []byte(v.text), nil
	case BoolKind:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = Null()
	case string:
		*v = String(x)
	case bool:
		*v = Bool(x)
	case json.Number:
		n, err := Number(x.String())
		if err != nil {
			return err
		}
		*v = n
	default:
		return fmt.Errorf("%w: %s", ErrInvalidValue, data)
	}
	return nil
}

// ParseValue interprets command line text: null, true and false map to their
// kinds, decimal text to a number, double-quoted text to a literal string,
// and anything else to a string.
func ParseValue(s string) Value {
	switch s {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return String(s[1 : len(s)-1])
	}

	if n, err := Number(s); err == nil {
		return n
	}
	return String(s)
}
