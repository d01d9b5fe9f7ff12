package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/models"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/urfave/cli/v3"
)

// Now fetches and prints the current playback snapshot.
func (r *Runner) Now(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching current playback")

	resp, err := r.api.Get(ctx, "/now-playing")
	if err != nil {
		return fmt.Errorf("%w: service unavailable: %v", shared.ErrServiceUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: run: wallpaper login", shared.ErrNotAuthenticated)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if useJSON {
		return r.writeJSON(resp.JSONData, pretty)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(resp.Body, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return r.writeSnapshot(snap)
}

// writeSnapshot renders a snapshot as terminal text.
func (r *Runner) writeSnapshot(snap models.Snapshot) error {
	if snap.Item == nil {
		return r.writePlain("Nothing is playing.\n")
	}

	state := "▶ Playing"
	if !snap.IsPlaying {
		state = "⏸ Paused"
	}

	r.writePlain("%s: %s - %s\n", state, strings.Join(snap.Item.Artists, ", "), snap.Item.Name)
	if snap.Item.Album != "" {
		r.writePlain("   Album: %s\n", snap.Item.Album)
	}
	r.writePlain("   Position: %s / %s\n", formatDuration(snap.ProgressMs), formatDuration(snap.Item.DurationMs))
	if snap.Item.CanvasURL != "" {
		canvasURL := snap.Item.CanvasURL
		// Locally served assets come back as paths; mapped URLs are absolute.
		if strings.HasPrefix(canvasURL, "/") {
			canvasURL = r.config.BaseURL() + canvasURL
		}
		r.writePlain("   Canvas: %s\n", canvasURL)
	}
	if snap.Item.ExternalURL != "" {
		r.writePlain("   Link: %s\n", snap.Item.ExternalURL)
	}

	return nil
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// control posts to one playback control endpoint and reports the outcome.
func (r *Runner) control(ctx context.Context, path string) error {
	r.logger.Info("player control", "path", path)

	resp, err := r.api.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("%w: service unavailable: %v", shared.ErrServiceUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: run: wallpaper login", shared.ErrNotAuthenticated)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	return r.writePlain("✓ %s\n", strings.TrimPrefix(path, "/"))
}

func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error  { return r.control(ctx, "/play") }
func (r *Runner) Pause(ctx context.Context, cmd *cli.Command) error { return r.control(ctx, "/pause") }
func (r *Runner) Next(ctx context.Context, cmd *cli.Command) error  { return r.control(ctx, "/next") }
func (r *Runner) Previous(ctx context.Context, cmd *cli.Command) error {
	return r.control(ctx, "/previous")
}
