package youtube

import (
	youtube_v3 "google.golang.org/api/youtube/v3"
)

const videoKind = "youtube#video"

// The transforms below map one upstream shape to one normalized record. They
// are pure; a missing nested object yields ErrMalformedResponse.

// TransformSearchItem normalizes one search.list entry.
func TransformSearchItem(item *youtube_v3.SearchResult) (SearchResultItem, error) {
	if item == nil {
		return SearchResultItem{}, malformed("search item")
	}
	if item.Id == nil {
		return SearchResultItem{}, malformed("id")
	}
	if item.Id.VideoId == "" {
		return SearchResultItem{}, malformed("id.videoId")
	}
	if item.Snippet == nil {
		return SearchResultItem{}, malformed("snippet")
	}
	image, err := mediumThumbnail(item.Snippet.Thumbnails, "snippet.thumbnails.medium")
	if err != nil {
		return SearchResultItem{}, err
	}

	return SearchResultItem{
		ID:     item.Id.VideoId,
		Title:  item.Snippet.Title,
		Image:  image,
		Author: item.Snippet.ChannelTitle,
		URL:    WatchURL(item.Id.VideoId),
		Type:   "video",
	}, nil
}

// TransformVideoItem normalizes one videos.list item. The snippet is optional;
// statistics are required.
func TransformVideoItem(item *youtube_v3.Video) (VideoStats, error) {
	if item == nil {
		return VideoStats{}, malformed("video item")
	}
	if item.Statistics == nil {
		return VideoStats{}, malformed("statistics")
	}

	stats := VideoStats{
		ID:       item.Id,
		Views:    item.Statistics.ViewCount,
		Likes:    item.Statistics.LikeCount,
		Dislikes: item.Statistics.DislikeCount,
		Comments: item.Statistics.CommentCount,
		Type:     "video",
	}
	if item.Id != "" {
		stats.URL = WatchURL(item.Id)
	}

	if item.Snippet != nil {
		stats.Title = item.Snippet.Title
		stats.Author = item.Snippet.ChannelTitle
		if image, err := mediumThumbnail(item.Snippet.Thumbnails, ""); err == nil {
			stats.Image = image
		}
	}

	return stats, nil
}

// TransformChannelItem normalizes one channels.list item. ContentDetails is
// optional and only supplies VideosID.
func TransformChannelItem(channel *youtube_v3.Channel) (ChannelInfo, error) {
	if channel == nil {
		return ChannelInfo{}, malformed("channel item")
	}
	if channel.Snippet == nil {
		return ChannelInfo{}, malformed("snippet")
	}
	if channel.Statistics == nil {
		return ChannelInfo{}, malformed("statistics")
	}
	if channel.Snippet.Thumbnails == nil || channel.Snippet.Thumbnails.Default == nil {
		return ChannelInfo{}, malformed("snippet.thumbnails.default")
	}

	handle := channel.Snippet.CustomUrl
	if handle == "" {
		handle = channel.Snippet.Title
	}

	info := ChannelInfo{
		ID:          channel.Id,
		Description: channel.Snippet.Description,
		Title:       channel.Snippet.Title,
		Followers:   channel.Statistics.SubscriberCount,
		Posts:       channel.Statistics.VideoCount,
		Handle:      handle,
		Name:        channel.Snippet.Title,
		Following:   nil,
		Image:       channel.Snippet.Thumbnails.Default.Url,
		URL:         ChannelURL(channel.Id),
	}
	if cd := channel.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		info.VideosID = cd.RelatedPlaylists.Uploads
	}

	return info, nil
}

// TransformChannelVideoListItems extracts the video ids of playlistItems.list
// entries, in playlist order.
func TransformChannelVideoListItems(items []*youtube_v3.PlaylistItem) ([]string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, malformed("playlist item")
		}
		switch {
		case item.ContentDetails != nil && item.ContentDetails.VideoId != "":
			ids = append(ids, item.ContentDetails.VideoId)
		case item.Snippet != nil && item.Snippet.ResourceId != nil:
			ids = append(ids, item.Snippet.ResourceId.VideoId)
		default:
			return nil, malformed("contentDetails.videoId")
		}
	}
	return ids, nil
}

// isVideoHit reports whether a search entry refers to a video. Channel and
// playlist hits, returned when the search type is widened, are not.
func isVideoHit(item *youtube_v3.SearchResult) bool {
	if item == nil || item.Id == nil {
		return true
	}
	return item.Id.Kind == "" || item.Id.Kind == videoKind
}

func mediumThumbnail(t *youtube_v3.ThumbnailDetails, path string) (string, error) {
	if t == nil || t.Medium == nil {
		return "", malformed(path)
	}
	return t.Medium.Url, nil
}
