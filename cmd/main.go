package main

import (
	"context"
	"os"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	// Missing .env is the common case, not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config.toml, using defaults %v", err)
		}
	}
	config.ApplyEnv()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "wallpaper",
		Usage:    "Spotify now-playing backend for a wallpaper display",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
