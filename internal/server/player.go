package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/playback"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
)

// PlayerHandler serves the playback endpoints the display page polls and the
// control endpoints it posts to.
// Implements the [Handler] interface for registration with a [Router].
type PlayerHandler struct {
	playback *playback.Service
	store    *auth.Store
	logger   *log.Logger
}

// NewPlayerHandler creates a PlayerHandler. The store is consulted only to
// fill the auth_possible hint on 401 responses.
func NewPlayerHandler(svc *playback.Service, store *auth.Store, logger *log.Logger) *PlayerHandler {
	return &PlayerHandler{playback: svc, store: store, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *PlayerHandler) Routes() []string {
	return []string{"/now-playing", "/play", "/pause", "/next", "/previous"}
}

// ServeHTTP dispatches the snapshot read (GET) and the controls (POST).
func (h *PlayerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/now-playing" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.nowPlaying(w, r)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/play":
		h.control(w, r, h.playback.Play)
	case "/pause":
		h.control(w, r, h.playback.Pause)
	case "/next":
		h.control(w, r, h.playback.Next)
	case "/previous":
		h.control(w, r, h.playback.Previous)
	default:
		http.NotFound(w, r)
	}
}

// nowPlaying writes the current playback snapshot.
func (h *PlayerHandler) nowPlaying(w http.ResponseWriter, r *http.Request) {
	snap, err := h.playback.Snapshot(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// control invokes one player operation and reports the outcome.
func (h *PlayerHandler) control(w http.ResponseWriter, r *http.Request, op func(context.Context) error) {
	if err := op(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, controlResult{Success: true})
}

// writeError maps a playback error to its wire envelope. A missing token
// renders 401 with the auth_possible hint; everything else is treated as a
// provider failure and renders 500 with the upstream detail.
func (h *PlayerHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, shared.ErrNotAuthenticated) {
		writeJSON(w, http.StatusUnauthorized, authError{
			Error:        "Not authenticated",
			AuthPossible: h.store.Configured(),
		})
		return
	}

	h.logger.Error("playback request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, apiError{
		Error:   "Spotify API error",
		Details: shared.ErrorDetail(err),
	})
}
