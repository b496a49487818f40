package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package. Each failure kind is
// distinct so callers can log them separately, even though the user-facing
// policy (substitute the fallback set) is the same for all of them.
var (
	// ErrEmptyInput is returned when the input text is empty.
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrEmptyResponse is returned when the upstream response contains no
	// candidate or no text parts.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidResponse is returned when the model output cannot be parsed:
	// a malformed markdown fence, invalid JSON, or a missing/empty
	// "flashcards" field. The wrapped message identifies which.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// UpstreamError is returned when the generation API answers with a
// non-success HTTP status. It preserves the status and response body for
// logging; neither is shown to end users.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream generation API returned status %d: %s", e.StatusCode, e.Body)
}
