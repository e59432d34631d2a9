package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes a codec failure.
type ErrorType string

const (
	ErrorTypeEncode ErrorType = "encode" // Node field of a kind the codec does not know
	ErrorTypeDecode ErrorType = "decode" // Malformed dict input
)

// Sentinel causes. Every *Error unwraps to exactly one of them.
var (
	ErrUnknownVariant  = errors.New("unknown variant tag")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidValue    = errors.New("invalid field value")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnsupportedKind = errors.New("unsupported field kind")
)

// Error is a structural codec violation with the position in the tree where
// it was found.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Error message
	Path       string    // Dotted path to the offending node, e.g. "body[0].target"
	NodeType   string    // Variant tag of the node being processed, if known
	Field      string    // Field key, if the error concerns one field
	Suggestion string    // Suggested fix (optional)
	Err        error     // Sentinel cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Path != "" {
		sb.WriteString(fmt.Sprintf(" at %s", e.Path))
	}
	if e.NodeType != "" {
		sb.WriteString(fmt.Sprintf(" (%s", e.NodeType))
		if e.Field != "" {
			sb.WriteString(fmt.Sprintf(".%s", e.Field))
		}
		sb.WriteString(")")
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(": %s", e.Suggestion))
	}

	return sb.String()
}

// Unwrap returns the sentinel cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEncodeError creates an encode error.
func NewEncodeError(cause error, path, nodeType, field, message string) *Error {
	return &Error{
		Type:     ErrorTypeEncode,
		Message:  message,
		Path:     path,
		NodeType: nodeType,
		Field:    field,
		Err:      cause,
	}
}

// NewDecodeError creates a decode error.
func NewDecodeError(cause error, path, nodeType, field, message string) *Error {
	return &Error{
		Type:     ErrorTypeDecode,
		Message:  message,
		Path:     path,
		NodeType: nodeType,
		Field:    field,
		Err:      cause,
	}
}

// WithSuggestion sets the suggestion and returns the error.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// IsEncode returns true if err is or wraps an encode error.
func IsEncode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeEncode
}

// IsDecode returns true if err is or wraps a decode error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeDecode
}
