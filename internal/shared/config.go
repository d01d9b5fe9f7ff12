package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file,
// with environment overrides applied on top.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Server  ServerConfig  `toml:"server"`
	Canvas  CanvasConfig  `toml:"canvas"`
}

// SpotifyConfig contains Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host   string `toml:"host"`
	Port   int    `toml:"port"`
	WebDir string `toml:"web_dir"`
}

// CanvasConfig locates the local canvas assets and the track-id to URL
// mapping file.
type CanvasConfig struct {
	Dir     string `toml:"dir"`
	MapFile string `toml:"map_file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies environment overrides. A missing file is not an error
// when path is the default "config.toml": the embedded defaults are used so
// the server can run from environment variables alone.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == "config.toml" {
			config := DefaultConfig()
			config.ApplyEnv()
			return config, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.ApplyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the
// embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the
// embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from the process environment. Credentials are
// expected to arrive this way in most deployments; the TOML file is optional.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
	if v := os.Getenv("SPOTIFY_REDIRECT_URI"); v != "" {
		c.Spotify.RedirectURI = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	host := c.Server.Host
	if host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", host, c.Server.Port)
}

// BaseURL returns the externally reachable root URL of the server.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s", c.Addr())
}

// RedirectURI returns the OAuth redirect URI, deriving it from the server
// port when not configured explicitly.
func (c *Config) RedirectURI() string {
	if c.Spotify.RedirectURI != "" {
		return c.Spotify.RedirectURI
	}
	return fmt.Sprintf("http://127.0.0.1:%d/callback", c.Server.Port)
}

// MapPath returns the canvas mapping file path, resolved against the canvas
// directory when relative.
func (c *Config) MapPath() string {
	if c.Canvas.MapFile == "" {
		return filepath.Join(c.Canvas.Dir, "canvas.json")
	}
	if filepath.IsAbs(c.Canvas.MapFile) {
		return c.Canvas.MapFile
	}
	return filepath.Join(c.Canvas.Dir, c.Canvas.MapFile)
}
