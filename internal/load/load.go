package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/cyclejson/internal/ir"
)

// Format names an input document format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
	FormatTOML Format = "toml"
)

// Formats lists the formats accepted by ParseFormat, auto first.
var Formats = []Format{FormatAuto, FormatJSON, FormatYAML, FormatCUE, FormatTOML}

// Error code constants for input loading.
const (
	ErrCodeNotFound      = "E201" // Input path not found
	ErrCodeReadFailed    = "E202" // Input could not be read
	ErrCodeUnknownFormat = "E203" // Format flag or extension not recognized
	ErrCodeParseFailed   = "E204" // Document is not valid for its format
	ErrCodeUnsupported   = "E205" // Document holds a value with no JSON form
)

// Error represents an error that occurred while loading an input document.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAuto, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", &Error{Code: ErrCodeUnknownFormat, Message: fmt.Sprintf("unknown input format %q", s)}
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", &Error{
		Code:    ErrCodeUnknownFormat,
		Message: fmt.Sprintf("cannot detect format of %s, use --input-format", path),
	}
}

// File reads and decodes the document at path. FormatAuto detects the
// format from the file extension.
func File(path string, format Format) (ir.Value, error) {
	if format == FormatAuto || format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &Error{Code: ErrCodeNotFound, Message: fmt.Sprintf("input not found: %s", path)}
	}
	if err != nil {
		return nil, &Error{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s", path), Err: err}
	}
	return Bytes(data, format, path)
}

// Reader decodes a document from r. FormatAuto is treated as JSON since a
// stream has no extension.
func Reader(r io.Reader, format Format, name string) (ir.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s", name), Err: err}
	}
	if format == FormatAuto || format == "" {
		format = FormatJSON
	}
	return Bytes(data, format, name)
}

// Bytes decodes data in the given format. name is used in error messages
// and CUE positions.
func Bytes(data []byte, format Format, name string) (ir.Value, error) {
	var (
		v   ir.Value
		err error
	)
	switch format {
	case FormatJSON:
		v, err = ir.ParseJSON(data)
	case FormatYAML:
		v, err = parseYAML(data)
	case FormatCUE:
		v, err = parseCUE(data, name)
	case FormatTOML:
		v, err = parseTOML(data)
	default:
		return nil, &Error{Code: ErrCodeUnknownFormat, Message: fmt.Sprintf("unknown input format %q", format)}
	}
	if err != nil {
		var le *Error
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &Error{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing %s as %s", name, format), Err: err}
	}
	return v, nil
}
