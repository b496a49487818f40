package gemini

import (
	"fmt"
	"strings"

	"github.com/jstrand/flashdeck/internal/generation"
)

const fenceDelimiter = "```"

// fenceTag is the language tag models commonly put after the opening fence.
const fenceTag = "json"

// unwrapJSON strips a surrounding markdown code fence from model output, if
// present, so the remainder can be parsed as JSON. A fence-tagged payload
// ("```json") has the tag token removed as well. Unfenced input is returned
// unchanged. An opening fence without a closing one is a malformed response.
func unwrapJSON(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, fenceDelimiter) {
		return s, nil
	}

	inner := s[len(fenceDelimiter):]
	end := strings.LastIndex(inner, fenceDelimiter)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated markdown code fence", generation.ErrInvalidResponse)
	}

	inner = strings.TrimSpace(inner[:end])
	if strings.HasPrefix(strings.ToLower(inner), fenceTag) {
		inner = strings.TrimSpace(inner[len(fenceTag):])
	}

	return inner, nil
}
