package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jstrand/flashdeck/internal/domain"
	"github.com/jstrand/flashdeck/internal/export"
	"github.com/jstrand/flashdeck/internal/extract"
	"github.com/jstrand/flashdeck/internal/generation"
	"github.com/jstrand/flashdeck/internal/redact"
	"github.com/jstrand/flashdeck/internal/store"
)

// maxUploadBytes bounds the multipart form, uploaded file included.
const maxUploadBytes = 16 << 20

// User-facing warning messages.
const (
	msgUnsupportedFile  = "Unsupported file type. Upload PDF, DOCX, or TXT."
	msgNoContent        = "Please enter text or upload a document."
	msgUnreadableFile   = "The uploaded file could not be read."
	msgGenerationFailed = "Card generation failed; sample cards were used instead."
)

// CreateSetForm represents the creation form fields.
type CreateSetForm struct {
	Title string `validate:"max=200"`
	Text  string
}

// SetHandler handles flashcard-set HTTP requests.
type SetHandler struct {
	sets      store.SetStore
	generator generation.Generator
	extractor *extract.Extractor
	layout    export.Layout
	flashes   *flashStore
	renderer  *renderer
	validator *validator.Validate
	logger    *slog.Logger
}

// NewSetHandler creates a SetHandler with its dependencies.
func NewSetHandler(
	sets store.SetStore,
	gen generation.Generator,
	extractor *extract.Extractor,
	layout export.Layout,
	sessionSecret string,
	logger *slog.Logger,
) (*SetHandler, error) {
	rd, err := newRenderer(logger)
	if err != nil {
		return nil, err
	}

	return &SetHandler{
		sets:      sets,
		generator: gen,
		extractor: extractor,
		layout:    layout,
		flashes:   newFlashStore(sessionSecret, logger),
		renderer:  rd,
		validator: validator.New(),
		logger:    logger,
	}, nil
}

// Index handles GET / requests.
func (h *SetHandler) Index(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.sets.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list sets", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.render(w, r, http.StatusOK, "index", "Flashcard sets",
		h.flashes.pop(w, r), summaries)
}

// NewForm handles GET /new requests.
func (h *SetHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.render(w, r, http.StatusOK, "create", "New set",
		h.flashes.pop(w, r), nil)
}

// Create handles POST /new requests: extract text, generate cards (falling
// back to the sample set on any generation failure), store the set, and
// redirect to its view. Only an empty input aborts without a store mutation.
func (h *SetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.DebugContext(r.Context(), "rejecting oversized or malformed form", "error", err)
		h.flashes.add(w, r, msgNoContent)
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	form := CreateSetForm{
		Title: strings.TrimSpace(r.FormValue("title")),
		Text:  r.FormValue("text"),
	}
	if err := h.validator.Struct(form); err != nil {
		h.flashes.add(w, r, "Title is too long.")
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	filename, fileData, err := formFile(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to read upload", "error", err)
		h.flashes.add(w, r, msgUnreadableFile)
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	res, err := h.extractor.Combine(r.Context(), form.Text, filename, fileData)
	if res.Unsupported {
		h.flashes.add(w, r, msgUnsupportedFile)
	}
	switch {
	case errors.Is(err, extract.ErrNoContent):
		h.flashes.add(w, r, msgNoContent)
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	case err != nil:
		h.logger.WarnContext(r.Context(), "extraction failed",
			"filename", filename,
			"error", err)
		h.flashes.add(w, r, msgUnreadableFile)
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	cards := h.generate(w, r, res.Text)

	set, err := h.sets.Create(r.Context(), form.Title, cards)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to store set", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(r.Context(), "created flashcard set",
		"set_id", set.ID,
		"title", set.Title,
		"card_count", len(set.Cards))

	http.Redirect(w, r, "/set/"+set.ID, http.StatusSeeOther)
}

// generate runs the generation call and applies the fallback policy: any
// failure is logged by kind, warned to the user, and replaced with the
// deterministic sample set. Set creation never fails because of the model.
func (h *SetHandler) generate(w http.ResponseWriter, r *http.Request, text string) []domain.Flashcard {
	// Correlates the log lines of one generation attempt.
	attemptID := uuid.New().String()

	cards, err := h.generator.GenerateCards(r.Context(), text)
	if err == nil {
		h.logger.InfoContext(r.Context(), "generation succeeded",
			"attempt_id", attemptID,
			"card_count", len(cards))
		return cards
	}

	// Same user-facing policy for every failure kind, but distinct logging
	// so upstream trouble is distinguishable from parsing trouble.
	var upstreamErr *generation.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		h.logger.WarnContext(r.Context(), "generation API returned an error status",
			"attempt_id", attemptID,
			"status", upstreamErr.StatusCode,
			"body", redact.String(upstreamErr.Body))
	case errors.Is(err, generation.ErrEmptyResponse):
		h.logger.WarnContext(r.Context(), "generation API returned no candidates",
			"attempt_id", attemptID,
			"error", err)
	case errors.Is(err, generation.ErrInvalidResponse):
		h.logger.WarnContext(r.Context(), "generation output could not be parsed",
			"attempt_id", attemptID,
			"error", err)
	default:
		// Transport errors carry the request URL, which carries the key.
		h.logger.WarnContext(r.Context(), "generation call failed",
			"attempt_id", attemptID,
			"error", redact.Error(err))
	}

	h.flashes.add(w, r, msgGenerationFailed)
	return generation.FallbackCards()
}

// Show handles GET /set/{id} requests.
func (h *SetHandler) Show(w http.ResponseWriter, r *http.Request) {
	set, err := h.lookup(w, r)
	if set == nil || err != nil {
		return
	}

	h.renderer.render(w, r, http.StatusOK, "view", set.Title,
		h.flashes.pop(w, r), set)
}

// ExportPDF handles GET /set/{id}/export/pdf requests.
func (h *SetHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	set, err := h.lookup(w, r)
	if set == nil || err != nil {
		return
	}

	data, err := export.PDF(set, h.layout)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "PDF export failed", "set_id", set.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sendAttachment(w, data, set.Title+".pdf", "application/pdf")
}

// ExportPPTX handles GET /set/{id}/export/pptx requests.
func (h *SetHandler) ExportPPTX(w http.ResponseWriter, r *http.Request) {
	set, err := h.lookup(w, r)
	if set == nil || err != nil {
		return
	}

	data, err := export.PPTX(set, h.layout)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "PPTX export failed", "set_id", set.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sendAttachment(w, data, set.Title+".pptx",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation")
}

// formFile reads the optional uploaded file. A missing file is not an error.
func formFile(r *http.Request) (string, []byte, error) {
	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return "", nil, nil
	case err != nil:
		return "", nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	if header.Filename == "" {
		return "", nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", nil, err
	}

	return header.Filename, data, nil
}

// sendAttachment writes a downloadable binary response.
func sendAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", sanitizeFilename(filename)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}

// sanitizeFilename strips characters that break the Content-Disposition
// header.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
}

// lookup resolves the {id} path parameter, writing the 404 itself so export
// and view handlers share the not-found behavior.
func (h *SetHandler) lookup(w http.ResponseWriter, r *http.Request) (*domain.FlashcardSet, error) {
	id := chi.URLParam(r, "id")

	set, err := h.sets.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrSetNotFound):
		http.NotFound(w, r)
		return nil, nil
	case err != nil:
		h.logger.ErrorContext(r.Context(), "failed to load set", "set_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, err
	}

	return set, nil
}
