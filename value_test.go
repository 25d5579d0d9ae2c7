// File: strata/value_test.go
package strata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConversions(t *testing.T) {
	value := func(raw any) *Value {
		return &Value{path: "test", raw: raw}
	}

	t.Run("String", func(t *testing.T) {
		s, err := value("hello").String()
		require.NoError(t, err)
		assert.Equal(t, "hello", s)

		s, err = value(42).String()
		require.NoError(t, err)
		assert.Equal(t, "42", s)

		s, err = value(true).String()
		require.NoError(t, err)
		assert.Equal(t, "true", s)

		s, err = value(nil).String()
		require.NoError(t, err)
		assert.Equal(t, "", s)

		_, err = value(map[string]any{}).String()
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("Int64", func(t *testing.T) {
		i, err := value(42).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)

		i, err = value(int64(7)).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(7), i)

		i, err = value(3.9).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(3), i) // Truncated

		i, err = value("123").Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(123), i)

		i, err = value("0xFF").Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(255), i)

		i, err = value(json.Number("8080")).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(8080), i)

		i, err = value(true).Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(1), i)

		_, err = value("not a number").Int64()
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch)

		_, err = value(nil).Int64()
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("Float64", func(t *testing.T) {
		f, err := value(2.5).Float64()
		require.NoError(t, err)
		assert.Equal(t, 2.5, f)

		f, err = value(3).Float64()
		require.NoError(t, err)
		assert.Equal(t, 3.0, f)

		f, err = value("1.25").Float64()
		require.NoError(t, err)
		assert.Equal(t, 1.25, f)

		f, err = value(json.Number("0.5")).Float64()
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)

		_, err = value([]any{}).Float64()
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := value(true).Bool()
		require.NoError(t, err)
		assert.True(t, b)

		b, err = value("true").Bool()
		require.NoError(t, err)
		assert.True(t, b)

		b, err = value(0).Bool()
		require.NoError(t, err)
		assert.False(t, b)

		b, err = value(1.0).Bool()
		require.NoError(t, err)
		assert.True(t, b)

		_, err = value("maybe").Bool()
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("Slice", func(t *testing.T) {
		values, err := value([]any{"a", map[string]any{"k": "v"}}).Slice()
		require.NoError(t, err)
		require.Len(t, values, 2)

		s, err := values[0].String()
		require.NoError(t, err)
		assert.Equal(t, "a", s)
		assert.Equal(t, "test[0]", values[0].Path())

		nested, err := values[1].Get("k")
		require.NoError(t, err)
		assert.Equal(t, "test[1].k", nested.Path())

		_, err = value("scalar").Slice()
		var mismatch *TypeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}
