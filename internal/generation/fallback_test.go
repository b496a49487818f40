package generation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/generation"
)

func TestFallbackCards(t *testing.T) {
	t.Parallel()

	cards := generation.FallbackCards()
	require.Len(t, cards, 5)

	for i, card := range cards {
		assert.Equal(t, fmt.Sprintf("Sample Q%d", i+1), card.Question)
		assert.Equal(t, "Sample A", card.Answer)
	}
}

// TestFallbackCardsStable verifies the fallback is identical across calls and
// that callers cannot corrupt later results by mutating a returned slice.
func TestFallbackCardsStable(t *testing.T) {
	t.Parallel()

	first := generation.FallbackCards()
	first[0].Question = "mutated"

	second := generation.FallbackCards()
	assert.Equal(t, "Sample Q1", second[0].Question)
	assert.Equal(t, generation.FallbackCards(), second)
}
