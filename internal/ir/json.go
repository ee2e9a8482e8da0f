package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseJSON decodes JSON text into a Value graph.
// Object member order follows the document. Integers outside the int64
// range become *BigInt; any number with a fraction or exponent becomes Float.
// Decoded graphs are always trees: JSON text cannot express shared nodes.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// parseJSONValue reads exactly one value from the token stream.
func parseJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			arr := NewArray()
			for dec.More() {
				elem, err := parseJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("array[%d]: %w", arr.Len(), err)
				}
				arr.Append(elem)
			}
			if _, err := dec.Token(); err != nil { // closing ]
				return nil, err
			}
			return arr, nil

		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("object[%q]: %w", key, err)
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing }
				return nil, err
			}
			return obj, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)

	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	case json.Number:
		return parseNumber(string(t))
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

// parseNumber picks the narrowest numeric kind able to hold s.
func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return Int(n), nil
		}
		if b, ok := ParseBigInt(s); ok {
			return b, nil
		}
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("number out of range: %s", s)
	}
	return Float(f), nil
}
