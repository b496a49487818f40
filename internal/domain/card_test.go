package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/domain"
)

func TestNewFlashcardSet(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{Question: "What is Go?", Answer: "A programming language"},
	}

	set, err := domain.NewFlashcardSet("1", "Basics", cards)
	require.NoError(t, err)
	assert.Equal(t, "1", set.ID)
	assert.Equal(t, "Basics", set.Title)
	assert.Len(t, set.Cards, 1)
	assert.False(t, set.CreatedAt.IsZero())
}

func TestNewFlashcardSetDefaultsTitle(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{{Question: "Q", Answer: "A"}}

	for _, title := range []string{"", "   "} {
		set, err := domain.NewFlashcardSet("1", title, cards)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSetTitle, set.Title)
	}
}

func TestNewFlashcardSetValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		id      string
		cards   []domain.Flashcard
		wantErr error
	}{
		{
			name:    "empty ID",
			id:      "",
			cards:   []domain.Flashcard{{Question: "Q", Answer: "A"}},
			wantErr: domain.ErrEmptySetID,
		},
		{
			name:    "no cards",
			id:      "1",
			cards:   nil,
			wantErr: domain.ErrNoCards,
		},
		{
			name:    "card missing question",
			id:      "1",
			cards:   []domain.Flashcard{{Question: "", Answer: "A"}},
			wantErr: domain.ErrEmptyContent,
		},
		{
			name:    "card missing answer",
			id:      "1",
			cards:   []domain.Flashcard{{Question: "Q", Answer: " "}},
			wantErr: domain.ErrEmptyContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewFlashcardSet(tc.id, "title", tc.cards)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAnswerLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		answer string
		want   []string
	}{
		{
			name:   "single line",
			answer: "Just one line",
			want:   []string{"Just one line"},
		},
		{
			name:   "bullet lines",
			answer: `• First point\n• Second point\n• Third point`,
			want:   []string{"• First point", "• Second point", "• Third point"},
		},
		{
			name:   "segments are trimmed",
			answer: `  padded \n lines `,
			want:   []string{"padded", "lines"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card := domain.Flashcard{Question: "Q", Answer: tc.answer}
			assert.Equal(t, tc.want, card.AnswerLines())
		})
	}
}
