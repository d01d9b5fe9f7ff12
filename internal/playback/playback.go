// Playback proxy between the HTTP surface and the upstream provider
package playback

import (
	"context"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"
)

// Provider is the slice of the upstream service the proxy dispatches to.
type Provider interface {
	CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error)
	Play(ctx context.Context, accessToken string) error
	Pause(ctx context.Context, accessToken string) error
	Next(ctx context.Context, accessToken string) error
	Previous(ctx context.Context, accessToken string) error
}

// Augmenter attaches optional canvas URLs to tracks by id.
type Augmenter interface {
	Lookup(trackID string) (string, bool)
}

// Service proxies player operations for the display client. Every operation
// runs the same protocol: refresh the token if stale, require an access
// token, dispatch upstream.
type Service struct {
	store    *auth.Store
	provider Provider
	canvas   Augmenter
	logger   *log.Logger
}

// NewService creates a playback service over the credential store, provider,
// and canvas library.
func NewService(store *auth.Store, provider Provider, canvas Augmenter, logger *log.Logger) *Service {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Service{
		store:    store,
		provider: provider,
		canvas:   canvas,
		logger:   logger,
	}
}

// Snapshot reads the current playback state and projects it into the wire
// shape.
func (s *Service) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	token, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	playing, err := s.provider.CurrentlyPlaying(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.project(playing), nil
}

// Play resumes playback on the user's active device.
func (s *Service) Play(ctx context.Context) error {
	return s.control(ctx, "play", s.provider.Play)
}

// Pause halts playback on the user's active device.
func (s *Service) Pause(ctx context.Context) error {
	return s.control(ctx, "pause", s.provider.Pause)
}

// Next skips to the next track in the queue.
func (s *Service) Next(ctx context.Context) error {
	return s.control(ctx, "next", s.provider.Next)
}

// Previous returns to the previous track.
func (s *Service) Previous(ctx context.Context) error {
	return s.control(ctx, "previous", s.provider.Previous)
}

// authorize runs the shared front half of every operation: a best-effort
// token refresh whose failure is logged and absorbed, then the access token
// check. A stale token that failed to refresh is still handed to the
// provider; the upstream rejection is more useful than guessing.
func (s *Service) authorize(ctx context.Context) (string, error) {
	if err := s.store.EnsureFresh(ctx); err != nil {
		s.logger.Warn("token refresh failed", "err", err)
	}

	token := s.store.AccessToken()
	if token == "" {
		return "", shared.Errorf(shared.ErrNotAuthenticated, "no access token held")
	}
	return token, nil
}

// control dispatches a single player operation.
func (s *Service) control(ctx context.Context, op string, call func(context.Context, string) error) error {
	token, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	if err := call(ctx, token); err != nil {
		s.logger.Error("player control failed", "op", op, "err", err)
		return err
	}

	s.logger.Debug("player control dispatched", "op", op)
	return nil
}

// project normalizes the provider payload. An absent item means no active
// session, which projects to the resting shape rather than an error.
func (s *Service) project(playing *spotify.CurrentlyPlaying) *models.Snapshot {
	snap := &models.Snapshot{Timestamp: time.Now().UnixMilli()}
	if playing == nil || playing.Item == nil {
		return snap
	}

	snap.IsPlaying = playing.Playing
	snap.ProgressMs = int(playing.Progress)
	if playing.Timestamp > 0 {
		snap.Timestamp = playing.Timestamp
	}

	item := playing.Item
	track := &models.Track{
		ID:          string(item.ID),
		Name:        item.Name,
		Album:       item.Album.Name,
		DurationMs:  int(item.Duration),
		ExternalURL: item.ExternalURLs["spotify"],
	}

	for _, artist := range item.Artists {
		track.Artists = append(track.Artists, artist.Name)
	}
	for _, img := range item.Album.Images {
		track.AlbumImages = append(track.AlbumImages, models.Image{
			URL:    img.URL,
			Width:  int(img.Width),
			Height: int(img.Height),
		})
	}

	if url, ok := s.canvas.Lookup(string(item.ID)); ok {
		track.CanvasURL = url
	}

	snap.Item = track
	return snap
}
