package jsonenc

import (
	"math"
	"reflect"
	"strings"
	"unicode/utf16"
)

// MaxIndent caps both numeric and string indentation.
const MaxIndent = 10

// NormalizeIndent turns an indentation argument into the indent unit used
// for each nesting level.
//
//   - nil: compact output
//   - integer or float n: min(n, MaxIndent) spaces, compact when n < 1
//   - string: its first MaxIndent UTF-16 code units, used verbatim; a
//     surrogate pair that would straddle the limit is dropped whole
//
// Any other type is rejected with an INVALID_INDENT error.
func NormalizeIndent(indent any) (string, error) {
	if indent == nil {
		return "", nil
	}
	if s, ok := indent.(string); ok {
		return truncateUTF16(s, MaxIndent), nil
	}

	rv := reflect.ValueOf(indent)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return spaces(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return spaces(int64(min(rv.Uint(), MaxIndent))), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return "", nil
		}
		return spaces(int64(math.Max(math.Min(math.Trunc(f), MaxIndent), -1))), nil
	}
	return "", newInvalidIndentError(indent)
}

// truncateUTF16 returns the longest prefix of s that is at most n UTF-16
// code units long.
func truncateUTF16(s string, n int) string {
	units := 0
	for i, r := range s {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if units+w > n {
			return s[:i]
		}
		units += w
	}
	return s
}

func spaces(n int64) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(" ", int(min(n, MaxIndent)))
}
