package storefront

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response whose body carried the service's error
// envelope. Message holds the server-provided text, suitable for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// IsAuth reports whether err is a 400/401 rejection from a protected
// endpoint. The cart service uses both for missing or invalid tokens.
func IsAuth(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404, e.g. adding a product the
// service no longer knows about.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusNotFound
}

// ServerMessage extracts the server-provided message from err, or falls
// back to the given text when err carries no envelope (network failure,
// malformed response).
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
