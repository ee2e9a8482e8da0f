package jsonenc

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// quote renders s as a JSON string literal.
//
// Escaping rules:
//   - No HTML escaping (<, >, & are NOT escaped)
//   - U+2028 (LINE SEPARATOR) and U+2029 (PARAGRAPH SEPARATOR) are NOT escaped
//   - Only control characters (U+0000-U+001F), backslash, and quote are escaped
//   - Invalid UTF-8 is replaced by U+FFFD
func quote(s string, nfc bool) (string, error) {
	if nfc {
		s = norm.NFC.String(s)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // CRITICAL: <, >, & must NOT be escaped
	if err := enc.Encode(s); err != nil {
		return "", err
	}

	// json.Encoder adds trailing newline, remove it
	result := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	// Go's json.Encoder escapes U+2028 and U+2029 for JavaScript
	// compatibility; JSON text keeps them literal.
	return string(unescapeLineSeparators(result)), nil
}

// unescapeLineSeparators converts \u2028 and \u2029 escape sequences back to
// literal characters. Escape sequences are consumed pairwise from the left,
// so an escaped backslash followed by the text "u2028" stays untouched.
func unescapeLineSeparators(data []byte) []byte {
	// Fast path: if no \u202 sequences, return unchanged
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			result = append(result, data[i])
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				result = append(result, "\u2028"...)
				i += 5
				continue
			case "2029":
				result = append(result, "\u2029"...)
				i += 5
				continue
			}
		}
		// Any other escape: copy both bytes so the second is never
		// mistaken for the start of a new sequence.
		result = append(result, data[i], data[i+1])
		i++
	}
	return result
}

// formatInt renders an int64 in decimal.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// formatFloat renders f in the shortest form that round-trips. Non-finite
// values have no JSON form and render as null; negative zero renders as 0.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	// encoding/json already switches to exponent form outside [1e-6, 1e21)
	b, err := json.Marshal(f)
	if err != nil {
		return "null"
	}
	return string(b)
}
