package jsonenc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/cyclejson/internal/ir"
)

// EncodeError represents an error detected while rendering a value graph.
//
// Encode errors include:
//   - Unsupported type: a node kind the encoder cannot render (BigInt)
//   - Circular structure: a container re-entered while still being rendered
//   - Invalid indent: an indentation argument of an unusable type
type EncodeError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key is the member name or array index where the error happened.
	Key string

	// Type is the type tag of the offending value.
	Type string
}

// ErrorCode categorizes encode errors.
type ErrorCode string

const (
	// ErrCodeUnsupportedType indicates a value kind that has no JSON form.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"

	// ErrCodeCircularStructure indicates a container that contains itself.
	ErrCodeCircularStructure ErrorCode = "CIRCULAR_STRUCTURE"

	// ErrCodeInvalidIndent indicates an indentation argument of a bad type.
	ErrCodeInvalidIndent ErrorCode = "INVALID_INDENT"
)

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return e.Message
}

// IsCycleError returns true if the error is a circular structure error.
// Uses errors.As to handle wrapped errors.
func IsCycleError(err error) bool {
	var ee *EncodeError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeCircularStructure
	}
	return false
}

// IsUnsupportedTypeError returns true if the error is an unsupported type error.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedTypeError(err error) bool {
	var ee *EncodeError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeUnsupportedType
	}
	return false
}

// newUnsupportedTypeError creates an EncodeError for a value with no JSON form.
func newUnsupportedTypeError(key string, v ir.Value) *EncodeError {
	typ := ir.TypeName(v)
	return &EncodeError{
		Code:    ErrCodeUnsupportedType,
		Message: fmt.Sprintf("Do not know how to serialize a %s", typ),
		Key:     key,
		Type:    typ,
	}
}

// newCycleError creates an EncodeError for a container that closes a circle.
// chain holds the frames from the re-entered container down to the holder of
// the closing member.
func newCycleError(chain []frame, key string, index bool) *EncodeError {
	start := ir.TypeName(chain[0].node)

	var b strings.Builder
	b.WriteString("Converting circular structure to JSON")
	fmt.Fprintf(&b, "\n    --> starting at object with constructor '%s'", start)
	for _, f := range chain[1:] {
		fmt.Fprintf(&b, "\n    |     %s -> object with constructor '%s'", describe(f.key, f.index), ir.TypeName(f.node))
	}
	fmt.Fprintf(&b, "\n    --- %s closes the circle", describe(key, index))

	return &EncodeError{
		Code:    ErrCodeCircularStructure,
		Message: b.String(),
		Key:     key,
		Type:    start,
	}
}

// describe names a member the way the circular structure message does.
func describe(key string, index bool) string {
	if index {
		return "index " + key
	}
	return "property '" + key + "'"
}

// newInvalidIndentError creates an EncodeError for an unusable indent argument.
func newInvalidIndentError(indent any) *EncodeError {
	return &EncodeError{
		Code:    ErrCodeInvalidIndent,
		Message: fmt.Sprintf("indent must be a number, a string or nil, got %T", indent),
		Type:    fmt.Sprintf("%T", indent),
	}
}
