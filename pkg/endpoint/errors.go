package endpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for dispatch outcomes that carry no parameter
// context.
var (
	// ErrRouteNotFound is returned when no registered template matches
	// the request path.
	ErrRouteNotFound = errors.New("endpoint: no route matches path")

	// ErrMethodNotSupported is returned for any verb other than the
	// supported read-only one.
	ErrMethodNotSupported = errors.New("endpoint: method not supported")
)

// BindKind classifies a parameter binding failure.
type BindKind uint8

const (
	// MissingPathParameter: the template has no placeholder with the
	// declared name.
	MissingPathParameter BindKind = iota

	// MissingQueryParameter: the query string has no entry for the
	// declared key.
	MissingQueryParameter

	// InvalidParameterFormat: the extracted text does not parse as the
	// declared type.
	InvalidParameterFormat

	// UnsupportedParameterType: the declaration names a type the
	// binder does not coerce.
	UnsupportedParameterType
)

// String returns the string representation of the BindKind.
func (k BindKind) String() string {
	switch k {
	case MissingPathParameter:
		return "MissingPathParameter"
	case MissingQueryParameter:
		return "MissingQueryParameter"
	case InvalidParameterFormat:
		return "InvalidParameterFormat"
	case UnsupportedParameterType:
		return "UnsupportedParameterType"
	default:
		return "Unknown"
	}
}

// BindError is a client-caused failure raised while resolving one
// handler argument. Binding stops at the first failure; there are no
// partial argument lists.
type BindError struct {
	Kind  BindKind
	Param string
	Value string // extracted text, where one existed
	Err   error  // underlying parse error, if any
}

// Error returns the error message with parameter context.
func (e *BindError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("endpoint: %s: parameter %q value %q", e.Kind, e.Param, e.Value)
	}
	return fmt.Sprintf("endpoint: %s: parameter %q", e.Kind, e.Param)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *BindError) Unwrap() error {
	return e.Err
}

// InvokeError wraps a failure inside a handler invocation, including a
// recovered panic. It is fatal to the single request only.
type InvokeError struct {
	Template string
	Panic    any   // non-nil when the handler panicked
	Err      error // non-nil when the handler returned an error
}

// Error returns the error message.
func (e *InvokeError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("endpoint: handler panic on %s: %v", e.Template, e.Panic)
	}
	return fmt.Sprintf("endpoint: handler failed on %s: %v", e.Template, e.Err)
}

// Unwrap returns the handler's error for errors.Is/As.
func (e *InvokeError) Unwrap() error {
	return e.Err
}
