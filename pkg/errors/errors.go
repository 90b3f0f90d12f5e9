// Package errors defines the error taxonomy rendered by the HTTP layer.
//
// Handlers never write error responses themselves. They return one of the
// types below and the failure chain installed by the api package turns it
// into JSON:
//
//	*ValidationError -> 422 {"detail": [{"loc": [...], "msg": "...", "type": "..."}]}
//	*HTTPError       -> Status, Payload()
//	anything else    -> 500
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Standard error functions
var (
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// Kind classifies an HTTPError.
type Kind string

const (
	KindNotFound Kind = "not_found"
	KindConflict Kind = "conflict"
	KindInternal Kind = "internal_error"
	// KindStatus is used for failures raised by the router itself
	// (unknown route, method not allowed).
	KindStatus Kind = "status"
)

// Payload is the JSON body of an HTTPError. Resource, Key and Value are only
// set for not-found and conflict failures.
type Payload struct {
	Detail   string `json:"detail"`
	Resource string `json:"resource,omitempty"`
	Key      string `json:"key,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// HTTPError is an explicit, deliberately raised HTTP failure.
type HTTPError struct {
	Kind     Kind
	Status   int
	Detail   string
	Resource string
	Key      string
	Value    any

	cause error
}

var _ error = (*HTTPError)(nil)

// Status returns an HTTPError carrying the standard status text as detail.
func Status(code int) *HTTPError {
	return &HTTPError{Kind: KindStatus, Status: code, Detail: http.StatusText(code)}
}

// Error implements error
func (e *HTTPError) Error() string {
	str := fmt.Sprintf("[%d %s] %s", e.Status, e.Kind, e.Detail)
	if e.cause != nil {
		str += fmt.Sprintf(" (%s)", e.cause)
	}
	return str
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Wrap returns a copy of the error with the cause set. The cause is kept for
// logging and errors.Is; it is never rendered.
func (e *HTTPError) Wrap(cause error) *HTTPError {
	err := *e
	err.cause = cause
	return &err
}

// Is matches another *HTTPError of the same kind and status.
func (e *HTTPError) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if other, ok := target.(*HTTPError); ok {
		return other.Kind == e.Kind && other.Status == e.Status
	}
	return false
}

// Payload returns the response body for the error.
func (e *HTTPError) Payload() Payload {
	return Payload{
		Detail:   e.Detail,
		Resource: e.Resource,
		Key:      e.Key,
		Value:    e.Value,
	}
}

// FieldError describes one invalid input location.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func NewFieldError(loc []string, msg, typ string) FieldError {
	return FieldError{Loc: loc, Msg: msg, Type: typ}
}

// ValidationError is returned when request input does not match the declared
// request shape.
type ValidationError struct {
	Errors []FieldError

	cause error
}

var _ error = (*ValidationError)(nil)

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Errors: fields}
}

// Error implements error
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Loc, "."), f.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Wrap returns a copy of the error with the cause set.
func (e *ValidationError) Wrap(cause error) *ValidationError {
	err := *e
	err.cause = cause
	return &err
}

// WithField returns a copy of the error with one more field error appended.
func (e *ValidationError) WithField(loc []string, msg, typ string) *ValidationError {
	err := *e
	err.Errors = append(append([]FieldError(nil), e.Errors...), NewFieldError(loc, msg, typ))
	return &err
}
