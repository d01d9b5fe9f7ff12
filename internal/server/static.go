package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/charmbracelet/log"
)

// StaticHandler serves the display page, locally hosted canvas videos and the
// health probe.
// Implements the [Handler] interface for registration with a [Router].
type StaticHandler struct {
	canvasDir string
	store     *auth.Store
	logger    *log.Logger
	files     http.Handler
}

// NewStaticHandler creates a StaticHandler serving the display page from
// webDir and canvas videos from canvasDir.
func NewStaticHandler(webDir, canvasDir string, store *auth.Store, logger *log.Logger) *StaticHandler {
	return &StaticHandler{
		canvasDir: canvasDir,
		store:     store,
		logger:    logger,
		files:     http.StripPrefix("/static/", http.FileServer(http.Dir(webDir))),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *StaticHandler) Routes() []string {
	return []string{"/", "/static/", "/canvas/", "/health"}
}

// ServeHTTP dispatches the root redirect, static files, canvas assets and the
// health probe.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch {
	case r.URL.Path == "/":
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	case r.URL.Path == "/health":
		h.health(w)
	case strings.HasPrefix(r.URL.Path, "/static/"):
		h.files.ServeHTTP(w, r)
	case strings.HasPrefix(r.URL.Path, "/canvas/"):
		h.asset(w, r)
	default:
		http.NotFound(w, r)
	}
}

// health reports liveness plus the auth state.
func (h *StaticHandler) health(w http.ResponseWriter) {
	state := h.store.State()
	writeJSON(w, http.StatusOK, models.Status{
		Status:        "ok",
		Configured:    state.Configured,
		Authenticated: state.Authenticated,
	})
}

// asset serves a canvas video from the local library. Lookup results are flat
// file names, so anything with a path separator left after the prefix is
// rejected outright.
func (h *StaticHandler) asset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/canvas/")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.canvasDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}
