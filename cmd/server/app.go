package main

import (
	"fmt"
	"log/slog"

	"github.com/jstrand/flashdeck/internal/api"
	"github.com/jstrand/flashdeck/internal/config"
	"github.com/jstrand/flashdeck/internal/export"
	"github.com/jstrand/flashdeck/internal/extract"
	"github.com/jstrand/flashdeck/internal/platform/gemini"
	"github.com/jstrand/flashdeck/internal/platform/memory"
)

// application holds the wired dependencies of the running server.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	setHandler *api.SetHandler
}

// newApplication constructs every component and injects it where needed.
// The store is in-memory: sets live for the process lifetime only.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	setHandler, err := api.NewSetHandler(
		memory.NewSetStore(),
		generator,
		extract.NewExtractor(logger),
		export.LayoutFromConfig(cfg.Export),
		cfg.Auth.SessionSecret,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create set handler: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		setHandler: setHandler,
	}, nil
}
