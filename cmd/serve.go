package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/auth"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/canvas"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/playback"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/server"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/services"
	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve wires the full backend and runs the HTTP server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if config == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			loaded, err := shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				loaded = shared.DefaultConfig()
			}
			config = loaded
		} else {
			config = shared.DefaultConfig()
		}
		config.ApplyEnv()
	}

	logger := r.logger

	spotify := services.NewSpotifyService(
		config.Spotify.ClientID,
		config.Spotify.ClientSecret,
		config.RedirectURI(),
		logger,
	)

	store := auth.NewStore(config.Spotify.ClientID, config.Spotify.ClientSecret, spotify, logger)
	flow := auth.NewFlow(store, spotify, logger)
	library := canvas.NewLibrary(config.Canvas.Dir, config.MapPath(), logger)
	player := playback.NewService(store, spotify, library, logger)

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(logger))
	router.Handler(server.NewAuthHandler(flow, logger))
	router.Handler(server.NewPlayerHandler(player, store, logger))
	router.Handler(server.NewStaticHandler(config.Server.WebDir, config.Canvas.Dir, store, logger))

	httpServer := &http.Server{
		Addr:    config.Addr(),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Infof("wallpaper server listening at %v", config.BaseURL())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	if !store.Configured() {
		logger.Warn("spotify credentials are not set; /login will render a diagnostic until they are")
	} else {
		logger.Info("authorize at " + config.BaseURL() + "/login")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	return nil
}
