package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the starter configuration file at the path given by the
// --config flag.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	return r.setupConfig(cmd.String("config"))
}

// setupConfig refuses to overwrite an existing file.
func (r *Runner) setupConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s already exists", shared.ErrInvalidConfig, configPath)
	}

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config file created", "path", configPath)

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlain("Edit it (or set SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET) and run: wallpaper serve\n")
	return nil
}
