// Spotify Web API implementation of [Provider]
//
// Token exchange and refresh go through [oauth2.Config] directly so the
// credential store keeps ownership of the token pair. Player calls go through
// zmb3's SDK client built per call from the caller's access token.
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// requestTimeout bounds a single call to the Web API.
	requestTimeout = 10 * time.Second

	// playerRequestRate paces player calls (requests per second). The display
	// client polls continuously, so upstream calls are throttled to stay well
	// under Spotify's rate limits.
	playerRequestRate = 5
)

// SpotifyService implements [Provider] for the Spotify Web API. It holds no
// token state of its own; every operation takes the caller's current token.
type SpotifyService struct {
	config     *oauth2.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewSpotifyService creates a Spotify service with the given OAuth2 client
// credentials. Empty credentials are allowed so the server can start
// unconfigured; the auth layer gates login on configuration.
func NewSpotifyService(clientID, clientSecret, redirectURI string, logger *log.Logger) *SpotifyService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes: []string{
			spotifyauth.ScopeUserReadCurrentlyPlaying,
			spotifyauth.ScopeUserReadPlaybackState,
			spotifyauth.ScopeUserModifyPlaybackState,
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyauth.AuthURL,
			TokenURL: spotifyauth.TokenURL,
		},
	}

	return &SpotifyService{
		config:     config,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(playerRequestRate), 1),
		logger:     logger,
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// AuthCodeURL returns the OAuth2 authorization URL for user login. The
// offline access type requests a refresh token alongside the access token.
func (s *SpotifyService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token pair.
func (s *SpotifyService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(s.oauthContext(ctx), code)
	if err != nil {
		return nil, shared.Errorf(shared.ErrAuthFailed, "%v", err)
	}
	return token, nil
}

// Refresh obtains a new access token using the given refresh token. The
// returned token carries the rotated refresh token when Spotify issues one,
// and the original otherwise.
func (s *SpotifyService) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := s.config.TokenSource(s.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, shared.Errorf(shared.ErrRefreshFailed, "%v", err)
	}
	return token, nil
}

// CurrentlyPlaying reads the active playback session. Spotify answers 204 when
// nothing is playing, which the SDK surfaces as a zero value with a nil Item.
func (s *SpotifyService) CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	playing, err := s.client(ctx, accessToken).PlayerCurrentlyPlaying(ctx)
	if err != nil {
		return nil, shared.Errorf(shared.ErrAPIRequest, "%v", err)
	}
	return playing, nil
}

// Play resumes playback on the user's active device.
func (s *SpotifyService) Play(ctx context.Context, accessToken string) error {
	return s.playerCall(ctx, accessToken, "play", func(ctx context.Context, c *spotify.Client) error {
		return c.Play(ctx)
	})
}

// Pause halts playback on the user's active device.
func (s *SpotifyService) Pause(ctx context.Context, accessToken string) error {
	return s.playerCall(ctx, accessToken, "pause", func(ctx context.Context, c *spotify.Client) error {
		return c.Pause(ctx)
	})
}

// Next skips to the next track in the queue.
func (s *SpotifyService) Next(ctx context.Context, accessToken string) error {
	return s.playerCall(ctx, accessToken, "next", func(ctx context.Context, c *spotify.Client) error {
		return c.Next(ctx)
	})
}

// Previous returns to the previous track.
func (s *SpotifyService) Previous(ctx context.Context, accessToken string) error {
	return s.playerCall(ctx, accessToken, "previous", func(ctx context.Context, c *spotify.Client) error {
		return c.Previous(ctx)
	})
}

// playerCall paces and dispatches a single player control against the Web API.
func (s *SpotifyService) playerCall(ctx context.Context, accessToken, op string, call func(context.Context, *spotify.Client) error) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	s.logger.Debug("spotify player call", "op", op)

	if err := call(ctx, s.client(ctx, accessToken)); err != nil {
		return shared.Errorf(shared.ErrAPIRequest, "%v", err)
	}
	return nil
}

// client builds an SDK client authorized with the given access token.
func (s *SpotifyService) client(ctx context.Context, accessToken string) *spotify.Client {
	httpClient := oauth2.NewClient(s.oauthContext(ctx), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	return spotify.New(httpClient)
}

// oauthContext injects the service's HTTP client so token requests share its
// timeout and, in tests, its transport.
func (s *SpotifyService) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}
