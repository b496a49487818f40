package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrSetNotFound is returned when a requested flashcard set does not
	// exist in the store.
	ErrSetNotFound = errors.New("flashcard set not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")
)
