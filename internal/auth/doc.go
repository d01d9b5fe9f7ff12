// Package auth owns OAuth2 credential state and the login flow for the single
// wallpaper user.
//
// # Credential Store
//
// [Store] keeps the client credentials and token pair in memory behind a
// mutex. Nothing is persisted; a restart drops the session and the user logs
// in again.
//
// [Store.EnsureFresh] refreshes a stale token in place. The write lock is held
// across the refresh round trip, so a burst of polling requests arriving with
// a stale token produces exactly one refresh call upstream.
//
// Staleness uses a 30 second window before expiry, matching the horizon of a
// request that is about to be made with the token.
//
// # Login Flow
//
// [Flow] builds the provider consent URL and handles the callback leg. The
// post-login return path rides in the OAuth state value, base64 encoded.
// [DecodeState] collapses anything that does not decode to a path starting
// with "/" back to "/".
package auth
