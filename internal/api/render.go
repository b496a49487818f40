package api

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the payload every template receives.
type pageData struct {
	PageTitle string
	Flashes   []string
	Data      any
}

// renderer holds the parsed page templates. Each page is parsed together
// with the base layout so "content" blocks don't collide.
type renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func newRenderer(logger *slog.Logger) (*renderer, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{"index", "create", "view"} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &renderer{pages: pages, logger: logger}, nil
}

// render writes the named page with the given title, flashes and data.
func (rd *renderer) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page string,
	title string,
	flashes []string,
	data any,
) {
	tmpl, ok := rd.pages[page]
	if !ok {
		rd.logger.ErrorContext(r.Context(), "unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := tmpl.ExecuteTemplate(w, "base", pageData{
		PageTitle: title,
		Flashes:   flashes,
		Data:      data,
	})
	if err != nil {
		rd.logger.ErrorContext(r.Context(), "failed to render template",
			"page", page,
			"error", err)
	}
}
