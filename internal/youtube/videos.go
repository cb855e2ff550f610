package youtube

import (
	"context"
	"fmt"
)

// GetVideo retrieves statistics and snippet of a single video.
// Costs only 1 quota unit.
func (c *Client) GetVideo(ctx context.Context, videoID string) (VideoStats, error) {
	if videoID == "" {
		return VideoStats{}, fmt.Errorf("video %w", ErrEmptyID)
	}

	resp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		if isHTTPNotFound(err) {
			return VideoStats{}, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
		}
		return VideoStats{}, fmt.Errorf("failed to get video %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		return VideoStats{}, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	stats, err := TransformVideoItem(resp.Items[0])
	if err != nil {
		return VideoStats{}, fmt.Errorf("failed to read video %s: %w", videoID, err)
	}
	if stats.ID == "" {
		stats.ID = videoID
		stats.URL = WatchURL(videoID)
	}

	return stats, nil
}

// GetVideos fetches every id concurrently. The result has one slot per id, in
// input order; a failed lookup is marked in its slot and never fails the call.
func (c *Client) GetVideos(ctx context.Context, ids []string) []Result[VideoStats] {
	return fanOut(ctx, c, ids, func(id string) string { return id }, c.GetVideo)
}
