package jsonenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", `"hello"`},
		{"html is not escaped", "<a href=\"x\">&</a>", `"<a href=\"x\">&</a>"`},
		{"line separator stays literal", "a\u2028b", "\"a\u2028b\""},
		{"paragraph separator stays literal", "a\u2029b", "\"a\u2029b\""},
		{"newline and tab", "a\nb\tc", `"a\nb\tc"`},
		{"control character", "\x01", `"\u0001"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"escaped backslash before u2028 text", `\u2028`, `"\\u2028"`},
		{"non-ASCII", "日本語", `"日本語"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := quote(tt.input, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestUnescapeLineSeparatorsFastPath(t *testing.T) {
	in := []byte(`"abc"`)
	assert.Equal(t, in, unescapeLineSeparators(in))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{100, "100"},
		{123456789012, "123456789012"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}
