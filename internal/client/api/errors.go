package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the directory service. Message is
// the server-provided error text when the body carried one, otherwise
// the standard status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// TransportError is a failure to reach the directory service at all:
// DNS failure, refused connection, timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "network error, please try again"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message collapses any error from the client into a single displayable
// string. Store boundaries show this text; they never branch on the kind.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	var transErr *TransportError
	if errors.As(err, &transErr) {
		return transErr.Error()
	}
	return err.Error()
}

func transportErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, &TransportError{Err: err})
}
