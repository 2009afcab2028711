package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Move errors
	ErrInvalidMove     = errors.New("cubesim: invalid move")
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// State errors
	ErrRotating   = errors.New("cubesim: move already in progress")
	ErrNoPlayback = errors.New("cubesim: no solution playback in progress")
)
