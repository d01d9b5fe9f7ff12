// Package services defines the [Provider] interface for the upstream music
// service and implements it for the Spotify Web API.
//
// # Provider Interface
//
// The auth and playback layers consume [Provider] rather than the Spotify SDK
// directly, so tests can substitute a double and the token pair stays owned by
// the credential store.
//
// # Spotify Implementation
//
// [SpotifyService] wraps the zmb3 SDK for player operations and talks to the
// accounts service through [oauth2.Config] for code exchange and refresh.
//
// The service holds no token state. Each call takes the caller's current
// access token and builds a short-lived SDK client around it, so a refreshed
// token is picked up on the very next call.
//
// Player calls are paced by a [rate.Limiter] because the display client polls
// the now-playing endpoint continuously.
//
// # Local API Client
//
// [APIService] is a thin HTTP client for a running wallpaper server. CLI
// commands use it to query playback state and issue player controls against
// the local endpoints.
//
// # Error Handling
//
// Services wrap failures in tagged errors from the shared package:
//   - [shared.ErrAuthFailed] : authorization code exchange rejected
//   - [shared.ErrRefreshFailed] : token refresh rejected
//   - [shared.ErrAPIRequest] : Web API request failed
//
// The tag drives the HTTP status mapping at the server layer, and the detail
// string carries the upstream message through verbatim.
package services
