package remote

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no backend endpoint or credentials were
// supplied. It is a distinct condition from a reachable backend rejecting a
// request.
var ErrNotConfigured = errors.New("remote: backend not configured")

// RequestError describes a request the backend rejected or that failed in
// transit after the backend was deemed configured.
type RequestError struct {
	Operation string
	Status    int
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("remote: %s failed with status %d: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("remote: %s failed: %s", e.Operation, e.Message)
}

// Unwrap exposes the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
