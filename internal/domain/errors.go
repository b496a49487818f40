package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptySetID is returned when a flashcard set has no identifier.
	ErrEmptySetID = errors.New("set ID cannot be empty")

	// ErrNoCards is returned when a flashcard set contains no cards.
	ErrNoCards = errors.New("set must contain at least one card")
)
