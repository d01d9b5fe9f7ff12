// Package playback proxies player operations between the HTTP surface and the
// upstream provider.
//
// # Operation Protocol
//
// Every operation follows the same sequence: refresh the held token if it is
// stale (best effort, failures are logged and absorbed), require an access
// token, then dispatch the provider call. Upstream failures carry the
// provider's message through untouched so the operator can read it.
//
// # Snapshot Projection
//
// [Service.Snapshot] flattens the SDK payload into [models.Snapshot]. An
// absent item means no active playback session, which is the resting state
// rather than an error. The canvas library is consulted with the track id so
// the display client gets a local video URL when one is hosted.
package playback
