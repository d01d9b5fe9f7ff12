// Package server provides HTTP routing, middleware, and the handlers behind the wallpaper display page.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
// [RequestLogger] is the only middleware installed by default.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Handlers
//
// [AuthHandler] drives the browser half of the OAuth flow: /login redirects to the provider's
// consent page (or renders a diagnostic when no credentials are configured) and /callback
// exchanges the authorization code and sends the browser back to the page that started login.
//
// [PlayerHandler] serves /now-playing and the four playback controls. Playback errors map to
// two envelopes: 401 with an auth_possible hint when no access token is held, and 500 carrying
// the upstream provider detail otherwise.
//
// [StaticHandler] serves the display page from the web directory, canvas videos from the local
// library directory, and the /health probe.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
