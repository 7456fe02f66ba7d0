package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is matched by a *StatusError carrying 404
var ErrNotFound = errors.New("not found")

// StatusError is a non-2xx response from the issue service
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string // The service's "error" field, if any
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match a 404
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Temporary reports whether retrying the request might succeed
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
