package youtube

import "context"

// API is the set of operations served by Client.
type API interface {
	Search(ctx context.Context, query string, params SearchParams) ([]SearchResultItem, error)
	SearchVerbose(ctx context.Context, query string, params SearchParams) ([]Result[VideoStats], error)
	GetVideo(ctx context.Context, videoID string) (VideoStats, error)
	GetVideos(ctx context.Context, ids []string) []Result[VideoStats]
	GetChannel(ctx context.Context, username string) (ChannelInfo, error)
	GetChannelByID(ctx context.Context, channelID string) (ChannelInfo, error)
	GetChannelVideosList(ctx context.Context, username, playlistID string) ([]string, error)
	GetChannelVerbose(ctx context.Context, username string) (ChannelVerboseResult, error)
}

var _ API = (*Client)(nil)
