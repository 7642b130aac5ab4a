package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carstorage/internal/common"
)

// ErrUnauthorized matches HTTP errors with status 401 or 403.
var ErrUnauthorized = common.ErrorUnauthorized

const fallbackMessage = "request failed"

// HTTPError is a non-2xx response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case common.ErrorForbidden:
		return e.StatusCode == http.StatusForbidden
	case common.ErrorNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// TransportError means the request could not be completed: connection
// refused, DNS failure, cancelled context, unreadable body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthError is a login or registration rejected by the server.
type AuthError struct {
	Err *HTTPError
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Err.Message
}

func (e *AuthError) Unwrap() error { return e.Err }
