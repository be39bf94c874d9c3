package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLQuote(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"clean", "abc", "abc"},
		{"spaces", "a b c", "a%20b%20c"},
		{"slash kept", "/foo/bar", "/foo/bar"},
		{"ampersand quoted", "a&b", "a%26b"},
		{"unreserved kept", "A-b_c.d~e", "A-b_c.d~e"},
		{"stringified value", 42, "42"},
		{"utf8 bytes", "é", "%C3%A9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URLQuote(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil without fallback", func(t *testing.T) {
		_, err := URLQuote(nil)
		assert.ErrorIs(t, err, ErrNilValue)
	})
}

func TestURLQuoteFallback(t *testing.T) {
	assert.Equal(t, "abc", URLQuoteFallback(nil, "abc"))
	assert.Equal(t, "a%20b", URLQuoteFallback("a b", "unused"))
}

func TestURLWithQuery(t *testing.T) {
	t.Run("no params", func(t *testing.T) {
		got, err := URLWithQuery("/f/b", nil)
		require.NoError(t, err)
		assert.Equal(t, "/f/b", got.String())
	})

	t.Run("single param", func(t *testing.T) {
		got, err := URLWithQuery("/f/b", map[string]any{"a": "1"})
		require.NoError(t, err)
		assert.Equal(t, "/f/b?a=1", got.String())
	})

	t.Run("params sorted, quoted, separators escaped", func(t *testing.T) {
		got, err := URLWithQuery("/f/b", map[string]any{"a": "1", "b": "3 4"})
		require.NoError(t, err)
		assert.Equal(t, "/f/b?a=1&amp;b=3%204", got.String())
	})

	t.Run("nil path", func(t *testing.T) {
		_, err := URLWithQuery(nil, nil)
		assert.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("nil param value", func(t *testing.T) {
		_, err := URLWithQuery("/f", map[string]any{"a": nil})
		assert.ErrorIs(t, err, ErrNilValue)
	})
}
