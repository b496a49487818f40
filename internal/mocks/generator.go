package mocks

import (
	"context"
	"sync"

	"github.com/jstrand/flashdeck/internal/domain"
	"github.com/jstrand/flashdeck/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateCardsFn lets test cases replace the GenerateCards behavior.
	GenerateCardsFn func(ctx context.Context, text string) ([]domain.Flashcard, error)

	// Default response values used when GenerateCardsFn is nil.
	Cards []domain.Flashcard
	Err   error

	// Call tracking for verification.
	GenerateCardsCalls struct {
		// mu protects the tracking state for concurrent test cases.
		mu sync.Mutex

		// Count tracks how many times GenerateCards was called.
		Count int

		// Texts contains the input text of every call.
		Texts []string
	}
}

// GenerateCards implements the generation.Generator interface.
func (m *MockGenerator) GenerateCards(ctx context.Context, text string) ([]domain.Flashcard, error) {
	m.GenerateCardsCalls.mu.Lock()
	m.GenerateCardsCalls.Count++
	m.GenerateCardsCalls.Texts = append(m.GenerateCardsCalls.Texts, text)
	m.GenerateCardsCalls.mu.Unlock()

	if m.GenerateCardsFn != nil {
		return m.GenerateCardsFn(ctx, text)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cards, nil
}

// CallCount returns how many times GenerateCards was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateCardsCalls.mu.Lock()
	defer m.GenerateCardsCalls.mu.Unlock()
	return m.GenerateCardsCalls.Count
}

// LastText returns the input text of the most recent call, or "" when the
// mock was never called.
func (m *MockGenerator) LastText() string {
	m.GenerateCardsCalls.mu.Lock()
	defer m.GenerateCardsCalls.mu.Unlock()
	if len(m.GenerateCardsCalls.Texts) == 0 {
		return ""
	}
	return m.GenerateCardsCalls.Texts[len(m.GenerateCardsCalls.Texts)-1]
}

var _ generation.Generator = (*MockGenerator)(nil)
