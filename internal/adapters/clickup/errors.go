package clickup

import (
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response. Interpreting the status is
// left to the caller.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("clickup %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("clickup %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
