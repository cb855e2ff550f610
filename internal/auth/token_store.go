package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

var errNoToken = errors.New("no oauth token in OAUTH_TOKEN_PATH or OAUTH_TOKEN_JSON")

// TokenStore holds the OAuth2 token the client authenticates with. A token
// saved at Path shadows the Seed passed through the environment; without a
// Path, refreshed tokens only live in memory.
type TokenStore struct {
	Path   string
	Seed   string
	logger *slog.Logger
}

// NewTokenStore creates a store from the configured credentials.
func NewTokenStore(creds Credentials, logger *slog.Logger) *TokenStore {
	return &TokenStore{Path: creds.TokenPath, Seed: creds.TokenJSON, logger: logger}
}

// Load returns the token saved at Path, falling back to Seed.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	if s.Path != "" {
		data, err := os.ReadFile(s.Path)
		switch {
		case err == nil:
			s.logger.Info("loaded oauth token", "path", s.Path)
			return decodeToken(data)
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
	}

	if s.Seed == "" {
		return nil, errNoToken
	}
	return decodeToken([]byte(s.Seed))
}

// Save writes token to Path through a temporary file.
func (s *TokenStore) Save(token *oauth2.Token) error {
	if s.Path == "" {
		s.logger.Warn("refreshed oauth token not persisted; set OAUTH_TOKEN_PATH to keep it")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return os.Rename(tmp, s.Path)
}

func decodeToken(data []byte) (*oauth2.Token, error) {
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// savingSource saves each token it hands out that carries a new access token.
type savingSource struct {
	base  oauth2.TokenSource
	save  func(*oauth2.Token) error
	log   *slog.Logger
	mu    sync.Mutex
	saved string
}

func (s *savingSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != s.saved {
		if err := s.save(token); err != nil {
			s.log.Error("failed to save oauth token", "error", err)
		}
		s.saved = token.AccessToken
	}
	return token, nil
}
