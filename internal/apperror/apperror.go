// Package apperror defines the typed failures the service layer returns.
// Every Error carries the HTTP status code the transport should answer with
// and a message safe to send to the client; wrapped causes stay server-side.
package apperror

import (
	"fmt"
	"net/http"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a coded application error.
type Error struct {
	Code    int
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Validation reports one or more field-level failures.
func Validation(fields ...FieldError) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func AlreadyExists(format string, args ...any) *Error {
	return &Error{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

func UnsupportedDataType(kind string) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("data type %q not supported", kind),
	}
}

// Storage wraps a store failure. The cause is kept for logs only; clients
// see a generic message.
func Storage(cause error) *Error {
	return &Error{
		Code:    http.StatusInternalServerError,
		Message: "storage failure",
		cause:   cause,
	}
}
