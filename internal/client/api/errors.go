package api

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced an HTTP response:
	// connection refused, DNS failure, cancelled context and the like.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks HTTP 401 responses. Matched with errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a structured failure reported by the server. Message is already
// chosen for display: the payload's "error" field when present, then its
// "message" field, then the HTTP status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets 401 responses match ErrUnauthorized via errors.Is.
func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
