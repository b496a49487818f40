// Package main implements the entry point for the flashdeck server, which
// turns pasted text or uploaded documents into LLM-generated flashcard sets
// and exports them as PDF or PPTX decks.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jstrand/flashdeck/internal/config"
	"github.com/jstrand/flashdeck/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logr := logger.Setup(cfg.Server)
	logr.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_endpoint", cfg.LLM.EndpointURL,
		"llm_timeout_seconds", cfg.LLM.TimeoutSeconds)

	app, err := newApplication(cfg, logr)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
