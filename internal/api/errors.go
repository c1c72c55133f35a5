package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure response from the backend, carrying the HTTP status
// and the server's validation message when one was sent.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("uaifood api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("uaifood api: request failed (status %d)", e.Status)
}

// NetworkError wraps transport-level failures (refused connections,
// timeouts) that never produced an HTTP status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "uaifood api: network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func statusIs(err error, codes ...int) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.Status == code {
			return true
		}
	}
	return false
}

// IsValidation reports a request the server rejected as malformed.
func IsValidation(err error) bool {
	return statusIs(err, http.StatusBadRequest, http.StatusUnprocessableEntity)
}

// IsAuth reports a missing, expired, or insufficient credential.
func IsAuth(err error) bool {
	return statusIs(err, http.StatusUnauthorized, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsConflict reports a 409-class rejection, e.g. deleting a category that
// still has items. The server message is surfaced verbatim.
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}

// IsNetwork reports a transport failure with no HTTP response.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// Message extracts the user-facing failure reason, falling back to the
// given default when the server sent none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
