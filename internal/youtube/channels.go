package youtube

import (
	"context"
	"fmt"

	youtube_v3 "google.golang.org/api/youtube/v3"
)

var channelParts = []string{"snippet", "statistics", "contentDetails"}

// channelLookup is one step of GetChannel's resolution strategy.
type channelLookup func(ctx context.Context, input string) (ChannelInfo, error)

// GetChannel resolves a channel by legacy username, then by treating the input
// as a channel id. When both steps fail the error is a *ChannelNotResolvableError.
func (c *Client) GetChannel(ctx context.Context, username string) (ChannelInfo, error) {
	if username == "" {
		return ChannelInfo{}, fmt.Errorf("channel username: %w", ErrEmptyID)
	}

	steps := []channelLookup{c.getChannelByUsername, c.GetChannelByID}
	errs := make([]error, len(steps))
	for i, step := range steps {
		info, err := step(ctx, username)
		if err == nil {
			return info, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ChannelInfo{}, ctxErr
		}
		errs[i] = err
	}

	return ChannelInfo{}, &ChannelNotResolvableError{
		Input:      username,
		ByUsername: errs[0],
		ByID:       errs[1],
	}
}

func (c *Client) getChannelByUsername(ctx context.Context, username string) (ChannelInfo, error) {
	call := c.service.Channels.List(channelParts).ForUsername(username)
	return c.fetchChannel(ctx, call, "username", username)
}

// GetChannelByID retrieves a channel by its canonical id.
func (c *Client) GetChannelByID(ctx context.Context, channelID string) (ChannelInfo, error) {
	if channelID == "" {
		return ChannelInfo{}, fmt.Errorf("channel %w", ErrEmptyID)
	}
	call := c.service.Channels.List(channelParts).Id(channelID)
	return c.fetchChannel(ctx, call, "id", channelID)
}

func (c *Client) fetchChannel(ctx context.Context, call *youtube_v3.ChannelsListCall, by, value string) (ChannelInfo, error) {
	resp, err := call.Context(ctx).Do()
	if err != nil {
		if isHTTPNotFound(err) {
			return ChannelInfo{}, fmt.Errorf("%w: %s %s", ErrChannelNotFound, by, value)
		}
		return ChannelInfo{}, fmt.Errorf("failed to get channel by %s %s: %w", by, value, err)
	}

	if len(resp.Items) == 0 {
		return ChannelInfo{}, fmt.Errorf("%w: %s %s", ErrChannelNotFound, by, value)
	}

	info, err := TransformChannelItem(resp.Items[0])
	if err != nil {
		return ChannelInfo{}, fmt.Errorf("failed to read channel %s: %w", value, err)
	}

	return info, nil
}

// GetChannelVerbose resolves the channel, lists its latest uploads and fetches
// their statistics. Any stage failing fails the call; individual video
// lookups are reported in their slots.
func (c *Client) GetChannelVerbose(ctx context.Context, username string) (ChannelVerboseResult, error) {
	user, err := c.GetChannel(ctx, username)
	if err != nil {
		return ChannelVerboseResult{}, err
	}

	if user.VideosID == "" {
		return ChannelVerboseResult{User: user, Posts: []Result[VideoStats]{}}, nil
	}

	ids, err := c.GetChannelVideosList(ctx, username, user.VideosID)
	if err != nil {
		return ChannelVerboseResult{}, err
	}

	if len(ids) == 0 {
		return ChannelVerboseResult{User: user, Posts: []Result[VideoStats]{}}, nil
	}

	return ChannelVerboseResult{
		User:  user,
		Posts: c.GetVideos(ctx, ids),
	}, nil
}
