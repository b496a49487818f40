package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jstrand/flashdeck/internal/config"
	"github.com/jstrand/flashdeck/internal/domain"
	"github.com/jstrand/flashdeck/internal/generation"
)

// maxResponseBytes caps how much of an upstream response body is read.
const maxResponseBytes = 4 << 20

// Generator implements the generation.Generator interface using the Gemini
// generateContent REST API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the HTTP client for upstream requests. Its timeout is the
	// configured upstream bound.
	client *http.Client
}

// NewGenerator creates a new Generator with the provided dependencies.
// Returns generation.ErrInvalidConfig if required settings are missing.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("%w: endpoint URL cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	if cfg.MaxInputChars <= 0 {
		return nil, fmt.Errorf("%w: max input chars must be positive", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// generateRequest is the request body for the generateContent endpoint.
type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Role  string        `json:"role"`
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the generateContent response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// responseSchema is the JSON payload the prompt instructs the model to emit.
type responseSchema struct {
	Flashcards []cardSchema `json:"flashcards"`
}

type cardSchema struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateCards sends one generateContent request for the given text and
// parses the model's JSON payload into flashcards.
//
// The input is truncated to the configured maximum before prompting; there is
// no chunking and no retry. Failures are classified per generation's error
// taxonomy so the caller can log them distinctly before substituting the
// fallback set.
func (g *Generator) GenerateCards(ctx context.Context, text string) ([]domain.Flashcard, error) {
	if strings.TrimSpace(text) == "" {
		return nil, generation.ErrEmptyInput
	}

	prompt, err := g.buildPrompt(ctx, text)
	if err != nil {
		return nil, err
	}

	raw, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return g.parseOutput(raw)
}

// buildPrompt truncates the input and renders the prompt template.
func (g *Generator) buildPrompt(ctx context.Context, text string) (string, error) {
	runes := []rune(text)
	if len(runes) > g.config.MaxInputChars {
		g.logger.DebugContext(ctx, "truncating generation input",
			"input_chars", len(runes),
			"max_chars", g.config.MaxInputChars)
		text = string(runes[:g.config.MaxInputChars])
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Content: text}); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}

	return buf.String(), nil
}

// call performs the single upstream request and returns the first candidate's
// text.
func (g *Generator) call(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{
				Role:  "user",
				Parts: []requestPart{{Text: prompt}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	endpoint := g.config.EndpointURL + "?key=" + url.QueryEscape(g.config.GeminiAPIKey)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.config.TimeoutSeconds)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.DebugContext(ctx, "calling generation API",
		"endpoint", g.config.EndpointURL,
		"prompt_length", len(prompt))

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &generation.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response envelope: %v", generation.ErrInvalidResponse, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", generation.ErrEmptyResponse)
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: candidate has no text", generation.ErrEmptyResponse)
	}

	return text, nil
}

// parseOutput unwraps an optional markdown fence and decodes the flashcard
// payload.
func (g *Generator) parseOutput(raw string) ([]domain.Flashcard, error) {
	cleaned, err := unwrapJSON(raw)
	if err != nil {
		return nil, err
	}

	var schema responseSchema
	if err := json.Unmarshal([]byte(cleaned), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON payload: %v", generation.ErrInvalidResponse, err)
	}

	if len(schema.Flashcards) == 0 {
		return nil, fmt.Errorf("%w: empty flashcard list", generation.ErrInvalidResponse)
	}

	// Blank-but-present fields must fail here, not later in store
	// validation, so the caller substitutes the fallback set instead of
	// erroring out of the create flow.
	cards := make([]domain.Flashcard, 0, len(schema.Flashcards))
	for i, c := range schema.Flashcards {
		if strings.TrimSpace(c.Question) == "" {
			return nil, fmt.Errorf("%w: card %d missing question", generation.ErrInvalidResponse, i)
		}
		if strings.TrimSpace(c.Answer) == "" {
			return nil, fmt.Errorf("%w: card %d missing answer", generation.ErrInvalidResponse, i)
		}
		cards = append(cards, domain.Flashcard{Question: c.Question, Answer: c.Answer})
	}

	return cards, nil
}

// interface guard
var _ generation.Generator = (*Generator)(nil)
