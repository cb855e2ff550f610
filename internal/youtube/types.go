package youtube

// SearchResultItem is one normalized search hit.
type SearchResultItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Type   string `json:"type"`
}

// VideoStats holds a video's counters and, when the snippet was fetched or the
// stats were merged with a search hit, its display metadata.
type VideoStats struct {
	ID       string `json:"id"`
	Views    uint64 `json:"views"`
	Likes    uint64 `json:"likes"`
	Dislikes uint64 `json:"dislikes"`
	Comments uint64 `json:"comments"`
	Title    string `json:"title,omitempty"`
	Image    string `json:"image,omitempty"`
	URL      string `json:"url,omitempty"`
	Type     string `json:"type,omitempty"`
	Author   string `json:"author,omitempty"`
}

// ChannelInfo is a normalized channel. Following is always nil: the API
// exposes no relationship data for unauthenticated lookups.
type ChannelInfo struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Title       string  `json:"title"`
	Followers   uint64  `json:"followers"`
	Posts       uint64  `json:"posts"`
	Handle      string  `json:"handle"`
	Name        string  `json:"name"`
	Following   *uint64 `json:"following"`
	Image       string  `json:"image"`
	VideosID    string  `json:"videos_id,omitempty"`
	URL         string  `json:"url,omitempty"`
}

// ChannelVerboseResult joins a channel with the stats of its latest uploads.
type ChannelVerboseResult struct {
	User  ChannelInfo          `json:"user"`
	Posts []Result[VideoStats] `json:"posts"`
}

// WatchURL returns the watch page URL of a video.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ChannelURL returns the page URL of a channel.
func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}
