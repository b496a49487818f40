package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// sessionName is the cookie carrying flash messages between requests.
const sessionName = "flashdeck_session"

// flashStore wraps the signed cookie session used for one-shot warnings.
type flashStore struct {
	store  sessions.Store
	logger *slog.Logger
}

func newFlashStore(secret string, logger *slog.Logger) *flashStore {
	cookieStore := sessions.NewCookieStore([]byte(secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}

	return &flashStore{store: cookieStore, logger: logger}
}

// add queues a warning for the next rendered page.
func (fs *flashStore) add(w http.ResponseWriter, r *http.Request, message string) {
	session, err := fs.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session; keep going.
		fs.logger.DebugContext(r.Context(), "recreating flash session", "error", err)
	}

	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		fs.logger.ErrorContext(r.Context(), "failed to save flash session", "error", err)
	}
}

// pop returns queued messages and clears them from the cookie.
func (fs *flashStore) pop(w http.ResponseWriter, r *http.Request) []string {
	session, err := fs.store.Get(r, sessionName)
	if err != nil {
		fs.logger.DebugContext(r.Context(), "recreating flash session", "error", err)
	}

	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			fs.logger.ErrorContext(r.Context(), "failed to clear flash session", "error", err)
		}
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
