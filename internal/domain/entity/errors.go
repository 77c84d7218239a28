package entity

import (
	"errors"
	"fmt"
)

const (
	ErrorCodeAPI     = "API_ERROR"
	ErrorCodeRequest = "REQUEST_ERROR"
	ErrorCodeUnknown = "UNKNOWN_ERROR"

	UnknownErrorMessage = "Unknown error occurred"
)

var ErrMissingAPIToken = errors.New("api token is required")

// ValidationError is bad item input detected before any request is made.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError is a request that never produced an HTTP response:
// timeouts, refused connections, DNS failures, cancellation.
type TransportError struct {
	Code string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// ItemError aborts a strict run. Records appended before the failing item
// are still returned alongside it.
type ItemError struct {
	Index   int
	Message string
	Code    string
	Err     error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("SE Ranking API Error: %s (item %d, %s)", e.Message, e.Index, e.Description())
}

func (e *ItemError) Description() string {
	return "Error Code: " + e.Code
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// RunError is a failure outside the per-item loop. A run that fails this way
// produces no output.
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("SE Ranking Node Error: %v", e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
