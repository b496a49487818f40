package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/generation"
)

func TestUnwrapJSON(t *testing.T) {
	t.Parallel()

	payload := `{"flashcards": [{"question": "Q", "answer": "A"}]}`

	testCases := []struct {
		name  string
		input string
	}{
		{name: "unfenced", input: payload},
		{name: "unfenced with whitespace", input: "\n  " + payload + "  \n"},
		{name: "plain fence", input: "```\n" + payload + "\n```"},
		{name: "json-tagged fence", input: "```json\n" + payload + "\n```"},
		{name: "uppercase tag", input: "```JSON\n" + payload + "\n```"},
		{name: "fence without newline", input: "```" + payload + "```"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := unwrapJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestUnwrapJSONUnterminatedFence(t *testing.T) {
	t.Parallel()

	_, err := unwrapJSON("```json\n{\"flashcards\": []}")
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}
