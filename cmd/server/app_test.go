package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/config"
)

func testAppConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		Auth:   config.AuthConfig{SessionSecret: "thisisasecretkeythatis32charslong!!"},
		LLM: config.LLMConfig{
			GeminiAPIKey:   "test-api-key",
			EndpointURL:    "https://example.com/v1/generate",
			TimeoutSeconds: 90,
			MaxInputChars:  8000,
		},
		Export: config.ExportConfig{QuestionWrapWidth: 100, AnswerWrapWidth: 110},
	}
}

func testApplication(t *testing.T) *application {
	t.Helper()

	app, err := newApplication(testAppConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}

func TestNewApplicationMissingAPIKey(t *testing.T) {
	cfg := testAppConfig()
	cfg.LLM.GeminiAPIKey = ""

	_, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestRouterRoutes(t *testing.T) {
	router := testApplication(t).setupRouter()

	testCases := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/new", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/set/999", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/set/999/export/pdf", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/set/999/export/pptx", wantStatus: http.StatusNotFound},
		{method: http.MethodDelete, path: "/set/1", wantStatus: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tc.wantStatus, rec.Code, "%s %s", tc.method, tc.path)
	}
}
