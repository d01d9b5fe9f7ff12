package server

import (
	"net/http"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
)

// statusRecorder captures the status code a handler writes so the request
// logger can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger returns [Middleware] that logs each request with a generated
// request id, method, path, response status and duration.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, req)

			logger.Info("request",
				"id", shared.GenerateID(),
				"method", req.Method,
				"path", req.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
