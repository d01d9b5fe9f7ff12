package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	tu "github.com/amaanali02072004/Spotify-API-Wallpaper/internal/testing"
)

func newTestStaticHandler(t *testing.T) (*StaticHandler, *auth.Store, string, string) {
	t.Helper()

	logger := shared.NewLogger(io.Discard)
	store := auth.NewStore("client_id", "client_secret", &tu.MockProvider{}, logger)

	webDir := t.TempDir()
	canvasDir := t.TempDir()

	return NewStaticHandler(webDir, canvasDir, store, logger), store, webDir, canvasDir
}

func TestStaticHandler(t *testing.T) {
	t.Run("Root Redirects To Display Page", func(t *testing.T) {
		handler, _, _, _ := newTestStaticHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected status 302, got %d", w.Code)
		}
		if location := w.Header().Get("Location"); location != "/static/index.html" {
			t.Errorf("expected redirect to /static/index.html, got %s", location)
		}
	})

	t.Run("Serves Display Page", func(t *testing.T) {
		handler, _, webDir, _ := newTestStaticHandler(t)

		page := []byte("<html><body>wallpaper</body></html>")
		if err := os.WriteFile(filepath.Join(webDir, "index.html"), page, 0644); err != nil {
			t.Fatalf("failed to write index.html: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/static/index.html", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != string(page) {
			t.Errorf("expected page body, got %s", got)
		}
	})

	t.Run("Health", func(t *testing.T) {
		t.Run("Reports Configured State", func(t *testing.T) {
			handler, _, _, _ := newTestStaticHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var status models.Status
			if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if status.Status != "ok" {
				t.Errorf("expected status ok, got %s", status.Status)
			}
			if !status.Configured {
				t.Error("expected configured true")
			}
			if status.Authenticated {
				t.Error("expected authenticated false before login")
			}
		})

		t.Run("Reports Authenticated State", func(t *testing.T) {
			handler, store, _, _ := newTestStaticHandler(t)
			seedStore(store)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			var status models.Status
			if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !status.Authenticated {
				t.Error("expected authenticated true after login")
			}
		})
	})

	t.Run("Canvas", func(t *testing.T) {
		t.Run("Serves Asset Bytes", func(t *testing.T) {
			handler, _, _, canvasDir := newTestStaticHandler(t)

			content := []byte("fake video bytes")
			if err := os.WriteFile(filepath.Join(canvasDir, "track123.mp4"), content, 0644); err != nil {
				t.Fatalf("failed to write asset: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/canvas/track123.mp4", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if got := w.Body.String(); got != string(content) {
				t.Errorf("expected asset bytes, got %s", got)
			}
		})

		t.Run("Missing Asset Is Not Found", func(t *testing.T) {
			handler, _, _, _ := newTestStaticHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/canvas/absent.mp4", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", w.Code)
			}
		})

		t.Run("Rejects Nested Paths", func(t *testing.T) {
			handler, _, _, _ := newTestStaticHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/canvas/nested/asset.mp4", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", w.Code)
			}
		})
	})

	t.Run("Unknown Path Is Not Found", func(t *testing.T) {
		handler, _, _, _ := newTestStaticHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("Rejects Non-GET", func(t *testing.T) {
		handler, _, _, _ := newTestStaticHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", w.Code)
		}
	})
}
