package askapi

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
)

// FallbackMessage is shown when a failed response carries no usable detail.
const FallbackMessage = "Failed to fetch results"

// ServerFailureMessage is shown when the backend answers 2xx with an error status.
const ServerFailureMessage = "The server could not answer this question"

// ErrorKind separates transport failures from failures reported by the API.
type ErrorKind string

const (
	// ErrKindNetwork means the request never produced a readable response.
	ErrKindNetwork ErrorKind = "NETWORK"
	// ErrKindDecode means the response body was not the expected JSON.
	ErrKindDecode ErrorKind = "DECODE"
	// ErrKindApplication means the API rejected the question.
	ErrKindApplication ErrorKind = "APPLICATION"
)

// Error is returned by Client for every failed call.
type Error struct {
	Kind ErrorKind
	// StatusCode is the HTTP status, zero for network failures.
	StatusCode int
	// Message is the user facing failure text.
	Message string

	cause error
}

// Error returns the user facing message.
func (e *Error) Error() string {
	if e == nil {
		return "askapi error: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("askapi error: %s", e.Kind)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func newError(kind ErrorKind, status int, message string, cause error) *Error {
	return &Error{Kind: kind, StatusCode: status, Message: message, cause: cause}
}

// AsError extracts an askapi error from the error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// IsKind reports whether the error chain contains an askapi error of kind.
func IsKind(err error, kind ErrorKind) bool {
	if typed, ok := AsError(err); ok {
		return typed.Kind == kind
	}
	return false
}
