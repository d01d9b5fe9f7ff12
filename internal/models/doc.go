// Package models defines the wire shapes shared by the HTTP server and the CLI client.
//
// The central type is [Snapshot], one normalized read of the current playback
// state as returned by GET /now-playing:
//   - [Track] : the playing item with artist names, album art and an optional canvas URL
//   - [Image] : a single album art rendition
//
// [AuthState] is derived from the credential store (never stored). It feeds
// [Status] on GET /health and the auth_possible hint on unauthenticated
// responses.
package models
