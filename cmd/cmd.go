// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the wallpaper backend server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the wallpaper backend server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Serve,
	}
}

// loginCommand opens the browser at the running server's login route.
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Open the browser to authorize Spotify access",
		Action: r.Login,
	}
}

// statusCommand checks the running server's health endpoint.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check server health and authentication state (calls /health)",
		Action: r.Status,
	}
}

// nowCommand prints the currently playing track.
func nowCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "now",
		Usage: "Show the currently playing track",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Now,
	}
}

// controlCommands returns the four playback control commands, each a thin
// POST against the running server.
func controlCommands(r *Runner) []*cli.Command {
	return []*cli.Command{
		{Name: "play", Usage: "Resume playback", Action: r.Play},
		{Name: "pause", Usage: "Pause playback", Action: r.Pause},
		{Name: "next", Usage: "Skip to the next track", Action: r.Next},
		{Name: "previous", Aliases: []string{"prev"}, Usage: "Return to the previous track", Action: r.Previous},
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
