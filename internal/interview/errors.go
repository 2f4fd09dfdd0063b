package interview

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID does not exist in the store.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrSessionCompleted is returned when an answer is submitted to an
	// interview that has no open questions left.
	ErrSessionCompleted = errors.New("interview is already completed")
)
