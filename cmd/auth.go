package main

import (
	"context"
	"fmt"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/urfave/cli/v3"
)

// Login opens the system browser at the running server's login route. The
// server drives the rest of the OAuth flow.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	loginURL := r.config.BaseURL() + "/login"

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(loginURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", loginURL)
		return nil
	}

	r.writePlain("Complete the authorization in the browser, then check: wallpaper status\n")
	return nil
}

// Status checks the server's state by calling the /health endpoint.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking server status")

	resp, err := r.api.Get(ctx, "/health")
	if err != nil {
		return fmt.Errorf("%w: service unavailable: %v", shared.ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}

	if !resp.IsJSON {
		return r.writePlain("✓ Server is up\nStatus: %s\n", string(resp.Body))
	}

	healthData, ok := resp.JSONData.(map[string]any)
	if !ok {
		return r.writePlain("✓ Server is up\n")
	}

	status, ok := healthData["status"].(string)
	if !ok {
		status = "unknown"
	}

	r.writePlain("✓ Server is up\n")
	r.writePlain("Status: %s\n", status)

	if configured, ok := healthData["configured"].(bool); ok && configured {
		r.writePlain("Credentials: ✓ Configured\n")
	} else {
		r.writePlain("Credentials: ✗ Not configured\n")
	}

	if authenticated, ok := healthData["authenticated"].(bool); ok && authenticated {
		r.writePlain("Authentication: ✓ Authenticated\n")
	} else {
		r.writePlain("Authentication: ✗ Not authenticated\n")
	}

	return nil
}
