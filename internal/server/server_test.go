package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gxravel/ytdata/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct{}

func (stubAPI) Search(_ context.Context, query string, params youtube.SearchParams) ([]youtube.SearchResultItem, error) {
	items := make([]youtube.SearchResultItem, params.MaxResults)
	for i := range items {
		id := fmt.Sprintf("%s-%d", query, i)
		items[i] = youtube.SearchResultItem{ID: id, URL: youtube.WatchURL(id), Type: "video"}
	}
	return items, nil
}

func (stubAPI) SearchVerbose(context.Context, string, youtube.SearchParams) ([]youtube.Result[youtube.VideoStats], error) {
	return nil, youtube.ErrEmptyQuery
}

func (stubAPI) GetVideo(_ context.Context, id string) (youtube.VideoStats, error) {
	return youtube.VideoStats{ID: id, Title: "Song", Views: 100}, nil
}

func (stubAPI) GetVideos(_ context.Context, ids []string) []youtube.Result[youtube.VideoStats] {
	results := make([]youtube.Result[youtube.VideoStats], len(ids))
	for i, id := range ids {
		results[i].ID = id
		if id == "b" {
			results[i].Err = fmt.Errorf("%w: %s", youtube.ErrVideoNotFound, id)
			continue
		}
		results[i].Value = youtube.VideoStats{ID: id}
	}
	return results
}

func (stubAPI) GetChannel(_ context.Context, username string) (youtube.ChannelInfo, error) {
	return youtube.ChannelInfo{ID: "UC1", Title: username, Followers: 3}, nil
}

func (stubAPI) GetChannelByID(_ context.Context, id string) (youtube.ChannelInfo, error) {
	return youtube.ChannelInfo{ID: id}, nil
}

func (stubAPI) GetChannelVideosList(context.Context, string, string) ([]string, error) {
	return []string{}, nil
}

func (stubAPI) GetChannelVerbose(_ context.Context, username string) (youtube.ChannelVerboseResult, error) {
	return youtube.ChannelVerboseResult{
		User:  youtube.ChannelInfo{ID: "UC1", Title: username},
		Posts: []youtube.Result[youtube.VideoStats]{},
	}, nil
}

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(logger, stubAPI{}, Options{Transport: "http"})
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult, i int) string {
	t.Helper()
	require.Greater(t, len(res.Content), i)
	tc, ok := res.Content[i].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestListTools(t *testing.T) {
	session := connect(t, newTestServer())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"search_videos", "search_videos_verbose", "get_video", "get_videos",
		"get_channel", "get_channel_by_id", "get_channel_videos", "get_channel_verbose",
	}, names)
}

func TestSearchVideosTool(t *testing.T) {
	session := connect(t, newTestServer())

	res := callTool(t, session, "search_videos", map[string]any{"query": "band", "maxResults": 2})
	require.False(t, res.IsError)
	assert.Equal(t, "Found 2 videos for query 'band'", text(t, res, 0))

	var items []youtube.SearchResultItem
	require.NoError(t, json.Unmarshal([]byte(text(t, res, 1)), &items))
	assert.Len(t, items, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=band-0", items[0].URL)
}

func TestGetVideosToolReportsFailedSlots(t *testing.T) {
	session := connect(t, newTestServer())

	res := callTool(t, session, "get_videos", map[string]any{"videoIds": []string{"a", "b", "c"}})
	require.False(t, res.IsError)
	assert.Equal(t, "Fetched 2 of 3 videos (1 failed)", text(t, res, 0))

	var slots []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(t, res, 1)), &slots))
	require.Len(t, slots, 3)
	assert.Equal(t, "b", slots[1]["id"])
	assert.Equal(t, "video not found: b", slots[1]["error"])
	assert.NotContains(t, slots[1], "value")
}

func TestGetChannelVerboseTool(t *testing.T) {
	session := connect(t, newTestServer())

	res := callTool(t, session, "get_channel_verbose", map[string]any{"username": "band"})
	require.False(t, res.IsError)
	assert.Equal(t, "Channel band: Fetched 0 uploads", text(t, res, 0))
	assert.Contains(t, text(t, res, 1), `"posts": []`)
	assert.Contains(t, text(t, res, 1), `"following": null`)
}

func TestToolErrorIsReported(t *testing.T) {
	session := connect(t, newTestServer())

	res := callTool(t, session, "search_videos_verbose", map[string]any{"query": "x"})
	assert.True(t, res.IsError)
}

func TestHandlerServesRESTAndHealth(t *testing.T) {
	srv := httptest.NewServer(newTestServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/videos/abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var video youtube.VideoStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&video))
	assert.Equal(t, uint64(100), video.Views)
}
