package generation

import (
	"context"

	"github.com/jstrand/flashdeck/internal/domain"
)

// Generator defines the interface for generating flashcards from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateCards creates flashcards from the provided text.
	//
	// Implementations truncate overlong input rather than chunking it, make
	// exactly one upstream call (no retry), and respect ctx cancellation.
	//
	// Returns the ordered cards the model produced, or an error classified
	// by the types in errors.go. Callers are expected to substitute
	// FallbackCards() on any failure rather than aborting.
	GenerateCards(ctx context.Context, text string) ([]domain.Flashcard, error)
}
