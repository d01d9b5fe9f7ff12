// Credential store for the single wallpaper user
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// refreshWindow is how close to expiry an access token counts as stale.
const refreshWindow = 30 * time.Second

// Refresher obtains a new access token from a refresh token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// Store holds the OAuth2 client credentials and the token pair for the single
// user. All state lives in memory; restarting the server means logging in
// again. Access is mutex guarded, and [Store.EnsureFresh] holds the write lock
// across the refresh round trip so concurrent callers trigger at most one
// refresh.
type Store struct {
	mu sync.RWMutex

	clientID     string
	clientSecret string

	accessToken  string
	refreshToken string
	expiresAt    time.Time

	refresher Refresher
	logger    *log.Logger

	now func() time.Time
}

// NewStore creates a store carrying the given client credentials. Empty
// credentials leave the store unconfigured, which blocks login but nothing
// else.
func NewStore(clientID, clientSecret string, refresher Refresher, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Store{
		clientID:     clientID,
		clientSecret: clientSecret,
		refresher:    refresher,
		logger:       logger,
		now:          time.Now,
	}
}

// Configured reports whether OAuth client credentials are present.
func (s *Store) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientID != "" && s.clientSecret != ""
}

// Authenticated reports whether an access token is currently held. The token
// may be stale; holding one at all is what gates the playback endpoints.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// AccessToken returns the held access token, which may be empty.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// State reports the derived auth state for status surfaces.
func (s *Store) State() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.AuthState{
		Configured:    s.clientID != "" && s.clientSecret != "",
		Authenticated: s.accessToken != "",
	}
}

// Save overwrites the held token pair with tok. When the provider omits the
// refresh token, as Spotify does on most refresh responses, the previous one
// is kept.
func (s *Store) Save(tok *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(tok)
}

// save replaces token state. Callers must hold the write lock.
func (s *Store) save(tok *oauth2.Token) {
	s.accessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		s.refreshToken = tok.RefreshToken
	}
	s.expiresAt = tok.Expiry
}

// NeedsRefresh reports whether the held token should be refreshed before use:
// a refresh token exists and now is within refreshWindow of expiry. A token
// with no known expiry counts as stale.
func (s *Store) NeedsRefresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.needsRefresh()
}

// needsRefresh evaluates the staleness rule. Callers must hold a lock.
func (s *Store) needsRefresh() bool {
	return s.refreshToken != "" && !s.now().Before(s.expiresAt.Add(-refreshWindow))
}

// EnsureFresh refreshes the held token when it is stale. Without a refresh
// token it does nothing. On refresh failure the held state is left untouched
// and the error is returned; callers decide whether that is fatal.
func (s *Store) EnsureFresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.needsRefresh() {
		return nil
	}

	tok, err := s.refresher.Refresh(ctx, s.refreshToken)
	if err != nil {
		return err
	}

	s.save(tok)
	s.logger.Debug("access token refreshed", "expires_at", s.expiresAt)
	return nil
}
