package store

import "errors"

var (
	// ErrNotConfigured is returned by mutating operations when no backend is
	// configured. The fallback dataset is read-only sample data, so there is
	// no silent fallback write path.
	ErrNotConfigured = errors.New("store: backend not configured")
	// ErrNotFound is returned when the targeted event does not exist.
	ErrNotFound = errors.New("store: event not found")
)
