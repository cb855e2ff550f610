package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var ErrNoCredentials = errors.New("no YouTube credentials configured")

// Credentials selects how requests to the YouTube API are authenticated.
// An API key wins over an OAuth2 token.
type Credentials struct {
	APIKey string

	// TokenJSON is a serialized oauth2.Token.
	TokenJSON string

	// ClientID and ClientSecret let the token source refresh expired tokens.
	ClientID     string
	ClientSecret string

	// TokenPath, when set, persists refreshed tokens and is preferred over TokenJSON on load.
	TokenPath string

	// Endpoint overrides the API base URL.
	Endpoint string
}

// NewOAuth2Config creates a read-only OAuth2 configuration for the YouTube API.
func NewOAuth2Config(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
	}
}

// ClientOptions turns credentials into options for youtube.NewService.
func ClientOptions(ctx context.Context, creds Credentials, logger *slog.Logger) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if creds.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(creds.Endpoint))
	}

	if creds.APIKey != "" {
		logger.Info("using YouTube API key credentials")
		return append(opts, option.WithAPIKey(creds.APIKey)), nil
	}

	if creds.TokenJSON == "" && creds.TokenPath == "" {
		return nil, ErrNoCredentials
	}

	ts, err := TokenSource(ctx, creds, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("using OAuth2 token credentials", "persisted", creds.TokenPath != "")
	return append(opts, option.WithTokenSource(ts)), nil
}

// TokenSource loads the stored token and returns a refreshing source that
// saves every new token back to the store.
func TokenSource(ctx context.Context, creds Credentials, logger *slog.Logger) (oauth2.TokenSource, error) {
	store := NewTokenStore(creds, logger)
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load oauth token: %w", err)
	}

	cfg := NewOAuth2Config(creds.ClientID, creds.ClientSecret)
	return &savingSource{
		base: cfg.TokenSource(ctx, token),
		save: store.Save,
		log:  logger,
	}, nil
}
