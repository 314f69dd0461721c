package client

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a response outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func IsForbidden(err error) bool { return StatusCode(err) == http.StatusForbidden }

func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
