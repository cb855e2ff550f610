package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const testAPIKey = "test-key"

// fakeAPI serves the subset of the YouTube Data API the client uses.
type fakeAPI struct {
	mu        sync.Mutex
	search    []map[string]any
	videos    map[string]map[string]any
	failVideo map[string]int
	byName    map[string]map[string]any
	byID      map[string]map[string]any
	uploads   map[string][]string
	requests  []*http.Request
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{
		videos:    map[string]map[string]any{},
		failVideo: map[string]int{},
		byName:    map[string]map[string]any{},
		byID:      map[string]map[string]any{},
		uploads:   map[string][]string{},
	}
}

func (f *fakeAPI) addSearchHit(id, title, channel string) {
	f.search = append(f.search, map[string]any{
		"id": map[string]any{"kind": "youtube#video", "videoId": id},
		"snippet": map[string]any{
			"title":        title,
			"channelTitle": channel,
			"thumbnails": map[string]any{
				"medium": map[string]any{"url": "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg"},
			},
		},
	})
}

func (f *fakeAPI) addSearchChannelHit(channelID, title string) {
	f.search = append(f.search, map[string]any{
		"id": map[string]any{"kind": "youtube#channel", "channelId": channelID},
		"snippet": map[string]any{
			"title":        title,
			"channelTitle": title,
			"thumbnails": map[string]any{
				"medium": map[string]any{"url": "https://yt3.ggpht.com/" + channelID},
			},
		},
	})
}

func (f *fakeAPI) addVideo(id string, views, likes, dislikes, comments int) {
	f.videos[id] = videoFixture(id, views, likes, dislikes, comments)
}

func (f *fakeAPI) addChannel(id, username, uploads string) {
	ch := channelFixture(id, uploads)
	f.byID[id] = ch
	if username != "" {
		f.byName[username] = ch
	}
}

func videoFixture(id string, views, likes, dislikes, comments int) map[string]any {
	return map[string]any{
		"id": id,
		"snippet": map[string]any{
			"title":        "title " + id,
			"channelTitle": "author " + id,
			"thumbnails": map[string]any{
				"medium": map[string]any{"url": "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg"},
			},
		},
		"statistics": map[string]any{
			"viewCount":    fmt.Sprint(views),
			"likeCount":    fmt.Sprint(likes),
			"dislikeCount": fmt.Sprint(dislikes),
			"commentCount": fmt.Sprint(comments),
		},
	}
}

func channelFixture(id, uploads string) map[string]any {
	return map[string]any{
		"id": id,
		"snippet": map[string]any{
			"title":       "Channel " + id,
			"description": "about " + id,
			"customUrl":   "@" + strings.ToLower(id),
			"thumbnails": map[string]any{
				"default": map[string]any{"url": "https://yt3.ggpht.com/" + id},
			},
		},
		"statistics": map[string]any{
			"subscriberCount": "1200",
			"videoCount":      "42",
		},
		"contentDetails": map[string]any{
			"relatedPlaylists": map[string]any{"uploads": uploads},
		},
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(context.Background()))
	f.mu.Unlock()

	q := r.URL.Query()
	if q.Get("key") != testAPIKey {
		writeAPIError(w, http.StatusForbidden, "missing key")
		return
	}

	switch r.URL.Path {
	case "/youtube/v3/search":
		items := f.search
		if n := q.Get("maxResults"); n != "" {
			var limit int
			fmt.Sscan(n, &limit)
			if limit < len(items) {
				items = items[:limit]
			}
		}
		writeItems(w, items, "")

	case "/youtube/v3/videos":
		id := q.Get("id")
		if code, ok := f.failVideo[id]; ok {
			writeAPIError(w, code, "video failure")
			return
		}
		var items []map[string]any
		if v, ok := f.videos[id]; ok {
			items = append(items, v)
		}
		writeItems(w, items, "")

	case "/youtube/v3/channels":
		var items []map[string]any
		if name := q.Get("forUsername"); name != "" {
			if ch, ok := f.byName[name]; ok {
				items = append(items, ch)
			}
		}
		if id := q.Get("id"); id != "" {
			if ch, ok := f.byID[id]; ok {
				items = append(items, ch)
			}
		}
		writeItems(w, items, "")

	case "/youtube/v3/playlistItems":
		ids, ok := f.uploads[q.Get("playlistId")]
		if !ok {
			writeAPIError(w, http.StatusNotFound, "playlistNotFound")
			return
		}
		var size int
		fmt.Sscan(q.Get("maxResults"), &size)
		var start int
		fmt.Sscan(q.Get("pageToken"), &start)
		end := min(start+size, len(ids))
		next := ""
		if end < len(ids) {
			next = fmt.Sprint(end)
		}
		items := make([]map[string]any, 0, end-start)
		for _, id := range ids[start:end] {
			items = append(items, map[string]any{
				"contentDetails": map[string]any{"videoId": id},
			})
		}
		writeItems(w, items, next)

	default:
		writeAPIError(w, http.StatusNotFound, "unknown path "+r.URL.Path)
	}
}

func (f *fakeAPI) requestCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeAPI) lastQuery(path string) map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].URL.Path == path {
			return f.requests[i].URL.Query()
		}
	}
	return nil
}

func writeItems(w http.ResponseWriter, items []map[string]any, nextPageToken string) {
	if items == nil {
		items = []map[string]any{}
	}
	body := map[string]any{"items": items}
	if nextPageToken != "" {
		body["nextPageToken"] = nextPageToken
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}

// newTestClient starts the fake API and returns a client pointed at it.
func newTestClient(t *testing.T, api *fakeAPI, settings Settings) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewClient(context.Background(), settings, logger,
		option.WithEndpoint(srv.URL+"/"),
		option.WithAPIKey(testAPIKey),
	)
	require.NoError(t, err)
	return client
}
