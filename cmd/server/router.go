package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Register routes
	r.Get("/", app.setHandler.Index)
	r.Get("/new", app.setHandler.NewForm)
	r.Post("/new", app.setHandler.Create)
	r.Get("/set/{id}", app.setHandler.Show)
	r.Get("/set/{id}/export/pdf", app.setHandler.ExportPDF)
	r.Get("/set/{id}/export/pptx", app.setHandler.ExportPPTX)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
