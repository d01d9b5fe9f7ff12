// Authorization code flow against the upstream provider
package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// Authorizer is the slice of the upstream provider the login flow needs:
// building the consent URL and exchanging the callback code.
type Authorizer interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// Flow drives the OAuth2 authorization code flow and lands the resulting
// token pair in the credential store.
type Flow struct {
	store      *Store
	authorizer Authorizer
	logger     *log.Logger
}

// NewFlow creates a login flow over the given store and provider.
func NewFlow(store *Store, authorizer Authorizer, logger *log.Logger) *Flow {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Flow{
		store:      store,
		authorizer: authorizer,
		logger:     logger,
	}
}

// AuthorizeURL builds the provider consent URL with returnTo encoded into the
// OAuth state value so the callback can route the user back. Fails when client
// credentials are missing.
func (f *Flow) AuthorizeURL(returnTo string) (string, error) {
	if !f.store.Configured() {
		return "", shared.Errorf(shared.ErrMissingCredentials, "client id and secret are not set")
	}

	return f.authorizer.AuthCodeURL(EncodeState(returnTo)), nil
}

// HandleCallback exchanges the authorization code for a token pair, stores it,
// and returns the local path to send the user to.
func (f *Flow) HandleCallback(ctx context.Context, code, state string) (string, error) {
	if code == "" {
		return "", shared.Errorf(shared.ErrMissingCode, "callback carried no authorization code")
	}

	tok, err := f.authorizer.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	f.store.Save(tok)

	returnTo := DecodeState(state)
	f.logger.Info("authorization complete", "return_to", returnTo)
	return returnTo, nil
}

// EncodeState packs the post-login return path into the OAuth state value. An
// empty path encodes as "/".
func EncodeState(returnTo string) string {
	if returnTo == "" {
		returnTo = "/"
	}
	return base64.RawURLEncoding.EncodeToString([]byte(returnTo))
}

// DecodeState recovers the return path from the state value. Anything that
// fails to decode, or decodes to something other than a local absolute path,
// collapses to "/".
func DecodeState(state string) string {
	decoded, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return "/"
	}

	path := string(decoded)
	if !strings.HasPrefix(path, "/") {
		return "/"
	}
	return path
}
