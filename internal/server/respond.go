package server

import (
	"net/http"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
)

// authError is the body returned when playback is requested without an access
// token. AuthPossible tells the display page whether visiting /login could fix
// the situation or whether the server itself is missing credentials.
type authError struct {
	Error        string `json:"error"`
	AuthPossible bool   `json:"auth_possible"`
}

// apiError is the body returned when the upstream provider rejects a call.
// Details carries the provider's message verbatim.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// controlResult is the body returned by the playback control endpoints.
type controlResult struct {
	Success bool `json:"success"`
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := shared.MarshalJSON(v, false)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
