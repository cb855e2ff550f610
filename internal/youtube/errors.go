package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrEmptyQuery        = errors.New("search query cannot be empty")
	ErrEmptyID           = errors.New("id cannot be empty")
	ErrNotFound          = errors.New("not found")
	ErrVideoNotFound     = fmt.Errorf("video %w", ErrNotFound)
	ErrChannelNotFound   = fmt.Errorf("channel %w", ErrNotFound)
	ErrMalformedResponse = errors.New("malformed youtube response")

	// ErrChannelNotResolvable is matched by every *ChannelNotResolvableError.
	ErrChannelNotResolvable = errors.New("channel not resolvable by username or id")
)

// ChannelNotResolvableError reports that neither lookup step of GetChannel
// found a channel for Input.
type ChannelNotResolvableError struct {
	Input      string
	ByUsername error
	ByID       error
}

func (e *ChannelNotResolvableError) Error() string {
	return fmt.Sprintf("channel %q not resolvable: by username: %v; by id: %v", e.Input, e.ByUsername, e.ByID)
}

func (e *ChannelNotResolvableError) Is(target error) bool {
	return target == ErrChannelNotResolvable
}

func (e *ChannelNotResolvableError) Unwrap() []error {
	return []error{e.ByUsername, e.ByID}
}

// malformed wraps ErrMalformedResponse with the path of the missing field.
func malformed(path string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedResponse, path)
}

// isHTTPNotFound reports whether err carries an HTTP 404 from the API.
func isHTTPNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
