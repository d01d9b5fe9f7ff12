package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/canvas"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/playback"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	tu "github.com/amaanali02072004/Spotify-API-Wallpaper/internal/testing"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

func newTestPlayerHandler(t *testing.T, provider *tu.MockProvider, configured bool) (*PlayerHandler, *auth.Store) {
	t.Helper()

	logger := shared.NewLogger(io.Discard)

	clientID, clientSecret := "client_id", "client_secret"
	if !configured {
		clientID, clientSecret = "", ""
	}

	store := auth.NewStore(clientID, clientSecret, provider, logger)

	dir := t.TempDir()
	library := canvas.NewLibrary(dir, filepath.Join(dir, "canvas.json"), logger)
	svc := playback.NewService(store, provider, library, logger)

	return NewPlayerHandler(svc, store, logger), store
}

func seedStore(store *auth.Store) {
	store.Save(&oauth2.Token{
		AccessToken:  "access_token_1",
		RefreshToken: "refresh_token_1",
		Expiry:       time.Now().Add(time.Hour),
	})
}

func TestPlayerHandler(t *testing.T) {
	t.Run("Now Playing", func(t *testing.T) {
		t.Run("Returns Snapshot", func(t *testing.T) {
			provider := &tu.MockProvider{
				CurrentlyPlayingFunc: func(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error) {
					return &spotify.CurrentlyPlaying{
						Playing:   true,
						Progress:  44045,
						Timestamp: 1700000000000,
						Item: &spotify.FullTrack{
							SimpleTrack: spotify.SimpleTrack{
								ID:       "track123",
								Name:     "Mr. Brightside",
								Artists:  []spotify.SimpleArtist{{Name: "The Killers"}},
								Duration: 222075,
							},
							Album: spotify.SimpleAlbum{Name: "Hot Fuss"},
						},
					}, nil
				},
			}
			handler, store := newTestPlayerHandler(t, provider, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodGet, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			var snap models.Snapshot
			if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !snap.IsPlaying {
				t.Error("expected is_playing true")
			}
			if snap.ProgressMs != 44045 {
				t.Errorf("expected progress 44045, got %d", snap.ProgressMs)
			}
			if snap.Timestamp != 1700000000000 {
				t.Errorf("expected provider timestamp, got %d", snap.Timestamp)
			}
			if snap.Item == nil {
				t.Fatal("expected a track item")
			}
			if snap.Item.Name != "Mr. Brightside" {
				t.Errorf("expected track name Mr. Brightside, got %s", snap.Item.Name)
			}
		})

		t.Run("Resting Shape Without Session", func(t *testing.T) {
			handler, store := newTestPlayerHandler(t, &tu.MockProvider{}, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodGet, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			body := w.Body.String()
			if !strings.Contains(body, `"is_playing":false`) {
				t.Errorf("expected is_playing false, got %s", body)
			}
			if !strings.Contains(body, `"item":null`) {
				t.Errorf("expected null item, got %s", body)
			}
		})

		t.Run("Unauthenticated With Credentials", func(t *testing.T) {
			handler, _ := newTestPlayerHandler(t, &tu.MockProvider{}, true)

			req := httptest.NewRequest(http.MethodGet, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}

			var body authError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Error != "Not authenticated" {
				t.Errorf("expected error Not authenticated, got %s", body.Error)
			}
			if !body.AuthPossible {
				t.Error("expected auth_possible true when credentials are set")
			}
		})

		t.Run("Unauthenticated Without Credentials", func(t *testing.T) {
			handler, _ := newTestPlayerHandler(t, &tu.MockProvider{}, false)

			req := httptest.NewRequest(http.MethodGet, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}

			var body authError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.AuthPossible {
				t.Error("expected auth_possible false without credentials")
			}
		})

		t.Run("Provider Failure", func(t *testing.T) {
			provider := &tu.MockProvider{
				CurrentlyPlayingFunc: func(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error) {
					return nil, shared.Errorf(shared.ErrAPIRequest, "The access token expired")
				},
			}
			handler, store := newTestPlayerHandler(t, provider, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodGet, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", w.Code)
			}

			var body apiError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Error != "Spotify API error" {
				t.Errorf("expected error Spotify API error, got %s", body.Error)
			}
			if body.Details != "The access token expired" {
				t.Errorf("expected upstream detail verbatim, got %s", body.Details)
			}
		})

		t.Run("Rejects POST", func(t *testing.T) {
			handler, _ := newTestPlayerHandler(t, &tu.MockProvider{}, true)

			req := httptest.NewRequest(http.MethodPost, "/now-playing", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}
		})
	})

	t.Run("Controls", func(t *testing.T) {
		t.Run("Reports Success", func(t *testing.T) {
			var ops []string
			provider := &tu.MockProvider{
				NextFunc: func(ctx context.Context, accessToken string) error {
					ops = append(ops, "next")
					return nil
				},
			}
			handler, store := newTestPlayerHandler(t, provider, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodPost, "/next", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var result controlResult
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !result.Success {
				t.Error("expected success true")
			}
			if len(ops) != 1 || ops[0] != "next" {
				t.Errorf("expected one next call, got %v", ops)
			}
		})

		t.Run("Covers Every Control Route", func(t *testing.T) {
			tc := []struct {
				path string
			}{
				{"/play"},
				{"/pause"},
				{"/next"},
				{"/previous"},
			}

			for _, c := range tc {
				handler, store := newTestPlayerHandler(t, &tu.MockProvider{}, true)
				seedStore(store)

				req := httptest.NewRequest(http.MethodPost, c.path, nil)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				if w.Code != http.StatusOK {
					t.Errorf("%s: expected status 200, got %d", c.path, w.Code)
				}
			}
		})

		t.Run("Rejects GET", func(t *testing.T) {
			handler, store := newTestPlayerHandler(t, &tu.MockProvider{}, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodGet, "/play", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}
		})

		t.Run("Requires Token", func(t *testing.T) {
			handler, _ := newTestPlayerHandler(t, &tu.MockProvider{}, true)

			req := httptest.NewRequest(http.MethodPost, "/play", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", w.Code)
			}
		})

		t.Run("Provider Failure", func(t *testing.T) {
			provider := &tu.MockProvider{
				PlayFunc: func(ctx context.Context, accessToken string) error {
					return shared.Errorf(shared.ErrAPIRequest, "No active device found")
				},
			}
			handler, store := newTestPlayerHandler(t, provider, true)
			seedStore(store)

			req := httptest.NewRequest(http.MethodPost, "/play", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", w.Code)
			}

			var body apiError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Details != "No active device found" {
				t.Errorf("expected upstream detail verbatim, got %s", body.Details)
			}
		})
	})
}
