package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrMissingCredentials = errors.New("one of YOUTUBE_API_KEY, OAUTH_TOKEN_JSON or OAUTH_TOKEN_PATH is required")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// YouTubeAPIKey authenticates requests for public data.
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// OAuthTokenJSON is a serialized OAuth2 token used when no API key is set.
	OAuthTokenJSON string `env:"OAUTH_TOKEN_JSON"`

	// GoogleClientID and GoogleClientSecret allow the OAuth2 token to be refreshed.
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// OAuthTokenPath persists refreshed tokens when set.
	OAuthTokenPath string `env:"OAUTH_TOKEN_PATH"`

	// Endpoint overrides the YouTube API base URL.
	Endpoint string `env:"YOUTUBE_ENDPOINT"`

	SearchMaxResults int64  `env:"SEARCH_MAX_RESULTS" envDefault:"5"`
	SearchOrder      string `env:"SEARCH_ORDER" envDefault:"relevance"`
	SearchSafeSearch string `env:"SEARCH_SAFE_SEARCH" envDefault:"none"`

	// ChannelVideosMax caps the uploads listed per channel (default: 5).
	ChannelVideosMax int64 `env:"CHANNEL_VIDEOS_MAX" envDefault:"5"`

	// FanOutLimit bounds concurrent per-item requests (default: 8).
	FanOutLimit int `env:"FANOUT_LIMIT" envDefault:"8"`

	// FanOutRPS paces per-item requests; 0 disables pacing.
	FanOutRPS float64 `env:"FANOUT_RPS" envDefault:"0"`

	// Transport is "stdio" (default) or "http".
	Transport string `env:"TRANSPORT" envDefault:"stdio"`

	// Port is the HTTP listen port (default: 8080).
	Port int `env:"PORT" envDefault:"8080"`

	// CORSOrigins lists the origins allowed on the REST surface.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load loads the configuration from environment variables.
// It first attempts to load a .env file (if present), then parses environment variables.
func Load() (*Config, error) {
	// Load .env file if present (ignore error - .env is optional)
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" && c.OAuthTokenJSON == "" && c.OAuthTokenPath == "" {
		return ErrMissingCredentials
	}
	return nil
}
