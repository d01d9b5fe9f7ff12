package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
)

// unconfiguredPage is rendered when login is attempted before the Spotify
// application credentials are set. Redirecting to the provider without a
// client id would only surface an opaque provider error, so the diagnostic
// is shown here instead.
const unconfiguredPage = `<!DOCTYPE html>
<html>
<head>
    <title>Spotify Not Configured</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #e22134; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0 0 0.5rem 0; }
        code { background: #f0f0f0; padding: 0.1rem 0.4rem; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✗ Spotify Not Configured</h1>
        <p>The server has no Spotify application credentials.</p>
        <p>Set <code>SPOTIFY_CLIENT_ID</code> and <code>SPOTIFY_CLIENT_SECRET</code>, restart, and try again.</p>
    </div>
</body>
</html>
`

// AuthHandler serves the browser half of the OAuth flow.
// Implements the [Handler] interface for registration with a [Router].
type AuthHandler struct {
	flow   *auth.Flow
	logger *log.Logger
}

// NewAuthHandler creates an AuthHandler around the given login flow.
func NewAuthHandler(flow *auth.Flow, logger *log.Logger) *AuthHandler {
	return &AuthHandler{flow: flow, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *AuthHandler) Routes() []string {
	return []string{"/login", "/callback"}
}

// ServeHTTP dispatches to the login redirect or the callback.
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/login":
		h.login(w, r)
	case "/callback":
		h.callback(w, r)
	default:
		http.NotFound(w, r)
	}
}

// login redirects the browser to the provider's consent page, carrying the
// optional returnTo path through the state parameter.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	url, err := h.flow.AuthorizeURL(r.URL.Query().Get("returnTo"))
	if err != nil {
		h.logger.Error("login rejected", "error", err)
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, unconfiguredPage)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// callback finishes the authorization code flow and returns the browser to
// the page that started it.
func (h *AuthHandler) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path, err := h.flow.HandleCallback(r.Context(), q.Get("code"), q.Get("state"))
	if err != nil {
		if errors.Is(err, shared.ErrMissingCode) {
			http.Error(w, "Missing code", http.StatusBadRequest)
			return
		}

		h.logger.Error("token exchange failed", "error", err)
		http.Error(w, "Auth error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, path, http.StatusFound)
}
