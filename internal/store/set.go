package store

import (
	"context"

	"github.com/jstrand/flashdeck/internal/domain"
)

// SetSummary is the subset of a flashcard set shown in listings.
type SetSummary struct {
	ID    string
	Title string
}

// SetStore defines the interface for flashcard set storage.
// Sets are immutable once created; there is no update or delete.
type SetStore interface {
	// Create assigns a new unique ID, stores a set built from the given
	// title and cards, and returns it.
	// An empty title falls back to domain.DefaultSetTitle.
	// Returns ErrInvalidEntity wrapping the domain validation error if the
	// cards are invalid.
	Create(ctx context.Context, title string, cards []domain.Flashcard) (*domain.FlashcardSet, error)

	// Get retrieves a set by its ID.
	// Returns ErrSetNotFound if the set does not exist.
	Get(ctx context.Context, id string) (*domain.FlashcardSet, error)

	// List returns a summary of every stored set in insertion order.
	// Returns an empty slice when the store is empty.
	List(ctx context.Context) ([]SetSummary, error)
}
