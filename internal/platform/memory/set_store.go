// Package memory provides a process-lifetime, in-memory implementation of the
// store interfaces. Sets live until the process exits; there is no
// persistence.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jstrand/flashdeck/internal/domain"
	"github.com/jstrand/flashdeck/internal/store"
)

// SetStore is a mutex-guarded map of flashcard sets. IDs come from a
// monotonically increasing counter, so they stay unique under concurrent
// creates and start at "1" for an empty store.
type SetStore struct {
	mu     sync.Mutex
	nextID uint64
	sets   map[string]*domain.FlashcardSet
	order  []string
}

// NewSetStore creates an empty SetStore.
func NewSetStore() *SetStore {
	return &SetStore{
		sets: make(map[string]*domain.FlashcardSet),
	}
}

// Create assigns the next sequential ID and stores a new set.
func (s *SetStore) Create(
	ctx context.Context,
	title string,
	cards []domain.Flashcard,
) (*domain.FlashcardSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.FormatUint(s.nextID+1, 10)
	set, err := domain.NewFlashcardSet(id, title, cards)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.nextID++
	s.sets[set.ID] = set
	s.order = append(s.order, set.ID)

	return set, nil
}

// Get retrieves a set by ID, or store.ErrSetNotFound.
func (s *SetStore) Get(ctx context.Context, id string) (*domain.FlashcardSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[id]
	if !ok {
		return nil, store.ErrSetNotFound
	}

	return set, nil
}

// List returns id/title summaries in insertion order.
func (s *SetStore) List(ctx context.Context) ([]store.SetSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]store.SetSummary, 0, len(s.order))
	for _, id := range s.order {
		summaries = append(summaries, store.SetSummary{
			ID:    id,
			Title: s.sets[id].Title,
		})
	}

	return summaries, nil
}

// interface guard
var _ store.SetStore = (*SetStore)(nil)
