// package services defines interface Provider for the upstream music service
//
// Spotify is the only implementation
package services

import (
	"context"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// Provider defines the interface for an upstream music service: the OAuth2
// authorization flow plus the player operations the wallpaper exposes.
type Provider interface {
	// AuthCodeURL builds the provider's user consent URL carrying the opaque
	// state value.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a token pair.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)

	// Refresh obtains a new access token using a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)

	// CurrentlyPlaying reads the active playback session. A nil Item on the
	// returned value means no session is active.
	CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error)

	// Play resumes playback on the user's active device.
	Play(ctx context.Context, accessToken string) error

	// Pause halts playback on the user's active device.
	Pause(ctx context.Context, accessToken string) error

	// Next skips to the next track in the queue.
	Next(ctx context.Context, accessToken string) error

	// Previous returns to the previous track.
	Previous(ctx context.Context, accessToken string) error

	// Name returns the name of the provider (e.g., "Spotify")
	Name() string
}
