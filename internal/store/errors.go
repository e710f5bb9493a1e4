package store

import "errors"

var (
	// ErrSessionNotFound is returned when no local session has been saved.
	ErrSessionNotFound = errors.New("local session not found")
)
