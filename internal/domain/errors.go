package domain

import "errors"

var (
	// ErrDateParse rejects a whole command when any of its date text
	// cannot be resolved; nothing is partially applied.
	ErrDateParse = errors.New("could not understand date")

	// ErrInvalidThreshold rejects critical mass values below 1; the
	// prior threshold stays in effect.
	ErrInvalidThreshold = errors.New("critical mass must be a positive integer")

	// ErrUnknownScope means an operation referenced a scope that was
	// never loaded. Scopes are loaded on first contact, so hitting this
	// is a programming error, not user input.
	ErrUnknownScope = errors.New("scope not loaded")

	// ErrPersistence wraps snapshot read/write failures. Write failures
	// are warnings: the in-memory state is the source of truth while
	// the process runs.
	ErrPersistence = errors.New("persistence failure")
)
