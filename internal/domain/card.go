package domain

import (
	"strings"
	"time"
)

// AnswerLineBreak is the literal two-character escape sequence the generation
// prompt asks the model to use between answer lines. Answers are stored with
// the marker intact; renderers split on it at display time.
const AnswerLineBreak = `\n`

// DefaultSetTitle is used when a set is created without a title.
const DefaultSetTitle = "Untitled"

// Flashcard is a single question/answer learning unit. The answer may contain
// AnswerLineBreak markers separating logical lines.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerLines splits the answer on the literal line-break marker and trims
// each resulting segment.
func (f Flashcard) AnswerLines() []string {
	parts := strings.Split(f.Answer, AnswerLineBreak)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.TrimSpace(p))
	}
	return lines
}

// Validate checks that both sides of the card are present.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return ErrEmptyContent
	}
	if strings.TrimSpace(f.Answer) == "" {
		return ErrEmptyContent
	}
	return nil
}

// FlashcardSet is a named, ordered collection of flashcards. Sets are
// immutable after creation; card order is the order produced by generation.
type FlashcardSet struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewFlashcardSet creates a validated FlashcardSet. An empty title falls back
// to DefaultSetTitle.
func NewFlashcardSet(id, title string, cards []Flashcard) (*FlashcardSet, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultSetTitle
	}

	set := &FlashcardSet{
		ID:        id,
		Title:     title,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks if the FlashcardSet has valid data.
// Returns an error if any field fails validation.
func (s *FlashcardSet) Validate() error {
	if s.ID == "" {
		return ErrEmptySetID
	}

	if len(s.Cards) == 0 {
		return ErrNoCards
	}

	for _, card := range s.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}

	return nil
}
