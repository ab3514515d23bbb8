package indexer

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Equal(t *testing.T) {
	t.Run("numbers compare by value", func(t *testing.T) {
		five, err := Number("5000.0")
		require.NoError(t, err)
		exp, err := Number("5e3")
		require.NoError(t, err)

		assert.True(t, Uint(5000).Equal(five))
		assert.True(t, Int(5000).Equal(exp))
		assert.True(t, Float(5000).Equal(Uint(5000)))
		assert.False(t, Uint(5000).Equal(Uint(5001)))
	})

	t.Run("large integers stay exact", func(t *testing.T) {
		assert.False(t, Uint(math.MaxUint64).Equal(Uint(math.MaxUint64-1)))
		assert.Equal(t, "18446744073709551615", Uint(math.MaxUint64).String())
	})

	t.Run("kinds never compare equal", func(t *testing.T) {
		assert.False(t, String("5000").Equal(Uint(5000)))
		assert.False(t, String("true").Equal(Bool(true)))
		assert.False(t, Null().Equal(String("")))
		assert.False(t, Bool(false).Equal(Null()))
	})

	t.Run("nulls and booleans", func(t *testing.T) {
		assert.True(t, Null().Equal(Null()))
		assert.True(t, Bool(true).Equal(Bool(true)))
		assert.False(t, Bool(true).Equal(Bool(false)))
	})
}

func TestNumber(t *testing.T) {
	for _, s := range []string{"abc", "", "NaN", "Inf", "-Inf", "1e400"} {
		_, err := Number(s)
		assert.ErrorIs(t, err, ErrInvalidValue, s)
	}

	v, err := Number("-12.50")
	require.NoError(t, err)
	assert.Equal(t, NumberKind, v.Kind())
	assert.Equal(t, "-12.5", v.String())
	assert.InDelta(t, -12.5, v.Float64(), 0)
}

func TestValue_accessors(t *testing.T) {
	assert.Equal(t, "abc", String("abc").Str())
	assert.Empty(t, Uint(1).Str())
	assert.True(t, Bool(true).Boolean())
	assert.False(t, String("true").Boolean())
	assert.Zero(t, String("1").Float64())
	assert.True(t, Null().IsNull())

	assert.Nil(t, Null().Any())
	assert.Equal(t, "x", String("x").Any())
	assert.Equal(t, true, Bool(true).Any())
	assert.Equal(t, json.Number("42"), Uint(42).Any())

	assert.Equal(t, "null", NullKind.String())
	assert.Equal(t, "string", StringKind.String())
	assert.Equal(t, "number", NumberKind.String())
	assert.Equal(t, "bool", BoolKind.String())
}

func TestValue_JSON(t *testing.T) {
	t.Run("encodes each kind natively", func(t *testing.T) {
		data, err := json.Marshal(map[string]Value{
			"a": Null(),
			"b": String("owner"),
			"c": Uint(math.MaxUint64),
			"d": Bool(true),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":null,"b":"owner","c":18446744073709551615,"d":true}`, string(data))
	})

	t.Run("decodes filters", func(t *testing.T) {
		var f Filter
		err := json.Unmarshal([]byte(`{"kind":"account","lamports":18446744073709551615,"executable":false,"blockTime":null}`), &f)
		require.NoError(t, err)

		assert.Equal(t, Filter{
			"kind":       String("account"),
			"lamports":   Uint(math.MaxUint64),
			"executable": Bool(false),
			"blockTime":  Null(),
		}, f)
	})

	t.Run("rejects composite values", func(t *testing.T) {
		var v Value
		assert.ErrorIs(t, json.Unmarshal([]byte(`[1,2]`), &v), ErrInvalidValue)
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"a":1}`), &v), ErrInvalidValue)
	})
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		in   string
		want Value
	}{
		{"null", Null()},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"5000", Uint(5000)},
		{"-3", Int(-3)},
		{"0.5", Float(0.5)},
		{`"5000"`, String("5000")},
		{`"true"`, String("true")},
		{wrappedSOL, String(wrappedSOL)},
		{"", String("")},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.True(t, tc.want.Equal(ParseValue(tc.in)), "got %s", ParseValue(tc.in))
		})
	}
}
