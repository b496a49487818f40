// Package generation provides interfaces and error types for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini), allowing the application to
// generate flashcards from submitted text without coupling to a specific
// external service. The deterministic fallback set used when generation
// fails also lives here.
package generation
