package generation

import (
	"fmt"

	"github.com/jstrand/flashdeck/internal/domain"
)

// fallbackSize is the number of placeholder cards substituted when
// generation fails.
const fallbackSize = 5

// FallbackCards returns the deterministic placeholder set used whenever
// generation fails: questions "Sample Q1".."Sample Q5", all answered
// "Sample A". Set creation must never fail because of the model, so this is
// the substitute for every generation error kind.
func FallbackCards() []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, fallbackSize)
	for i := 1; i <= fallbackSize; i++ {
		cards = append(cards, domain.Flashcard{
			Question: fmt.Sprintf("Sample Q%d", i),
			Answer:   "Sample A",
		})
	}
	return cards
}
