package youtube

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	youtube_v3 "google.golang.org/api/youtube/v3"
)

const (
	defaultFanOutLimit      = 8
	defaultChannelVideosMax = 5
)

// Settings is the immutable configuration of a Client.
type Settings struct {
	// Search holds the default search parameters merged under every call.
	Search SearchParams

	// ChannelVideosMax caps the number of uploads listed per channel.
	ChannelVideosMax int64

	// FanOutLimit bounds the number of concurrent per-item requests.
	FanOutLimit int

	// RequestsPerSecond paces per-item requests of a fan-out. Zero disables pacing.
	RequestsPerSecond float64
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		Search:           DefaultSearchParams(),
		ChannelVideosMax: defaultChannelVideosMax,
		FanOutLimit:      defaultFanOutLimit,
	}
}

// Client wraps the YouTube API service with helper methods
type Client struct {
	service  *youtube_v3.Service
	settings Settings
	logger   *slog.Logger
}

// NewClient creates a new YouTube API client. Credentials and endpoint overrides
// are passed as client options (see internal/auth).
func NewClient(ctx context.Context, settings Settings, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	service, err := youtube_v3.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	defaults := DefaultSettings()
	settings.Search = defaults.Search.Merge(settings.Search)
	if settings.ChannelVideosMax <= 0 {
		settings.ChannelVideosMax = defaults.ChannelVideosMax
	}
	if settings.FanOutLimit <= 0 {
		settings.FanOutLimit = defaults.FanOutLimit
	}

	return &Client{
		service:  service,
		settings: settings,
		logger:   logger,
	}, nil
}

// Settings returns the client's effective settings.
func (c *Client) Settings() Settings {
	return c.settings
}

// limiter returns a fresh limiter for a single fan-out, or nil when pacing is off.
func (c *Client) limiter() *rate.Limiter {
	if c.settings.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.settings.RequestsPerSecond), 1)
}
