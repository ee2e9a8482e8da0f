package load

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/roach88/cyclejson/internal/ir"
)

// parseTOML decodes a TOML document. Tables become objects with sorted
// keys; datetimes keep their RFC 3339 text.
func parseTOML(data []byte) (ir.Value, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	return ir.FromAny(plainTOML(doc))
}

// plainTOML rewrites decoder output into the shapes ir.FromAny accepts.
func plainTOML(x any) any {
	switch val := x.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = plainTOML(v)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = plainTOML(v)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = plainTOML(v)
		}
		return out
	case time.Time:
		return formatTOMLTime(val)
	}
	return x
}

// Zone names the decoder gives to TOML local dates and times.
const (
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
	tomlLocalDatetime = "datetime-local"
)

// formatTOMLTime renders local dates and times without an offset.
func formatTOMLTime(t time.Time) string {
	switch t.Location().String() {
	case tomlLocalDate:
		return t.Format("2006-01-02")
	case tomlLocalTime:
		return t.Format("15:04:05.999999999")
	case tomlLocalDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}
