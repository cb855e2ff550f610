package youtube

import (
	"context"
	"errors"
	"fmt"

	youtube_v3 "google.golang.org/api/youtube/v3"
)

const playlistPageSize = 50

var (
	errStopPagination = errors.New("stop pagination")
	errNoUploads      = fmt.Errorf("uploads playlist %w", ErrNotFound)
)

// GetChannelVideosList returns the ids of the channel's latest uploads, newest
// first, capped at Settings.ChannelVideosMax. When playlistID is empty the
// uploads playlist is resolved from username via GetChannel.
// Quota cost: 1 unit per page of 50 items.
func (c *Client) GetChannelVideosList(ctx context.Context, username, playlistID string) ([]string, error) {
	if playlistID == "" {
		channel, err := c.GetChannel(ctx, username)
		if err != nil {
			return nil, err
		}
		if channel.VideosID == "" {
			return nil, fmt.Errorf("%w: %s", errNoUploads, username)
		}
		playlistID = channel.VideosID
	}

	limit := c.settings.ChannelVideosMax
	pageSize := min(limit, playlistPageSize)

	ids := make([]string, 0, limit)
	call := c.service.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(pageSize)

	err := call.Pages(ctx, func(response *youtube_v3.PlaylistItemListResponse) error {
		// Check context cancellation
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := TransformChannelVideoListItems(response.Items)
		if err != nil {
			return err
		}
		ids = append(ids, page...)

		// Stop if we've reached the requested count
		if int64(len(ids)) >= limit {
			return errStopPagination
		}
		return nil
	})

	if err != nil && !errors.Is(err, errStopPagination) {
		if isHTTPNotFound(err) {
			return nil, fmt.Errorf("%w: playlist %s", ErrNotFound, playlistID)
		}
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}

	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}

	return ids, nil
}
