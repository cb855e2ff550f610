package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gxravel/ytdata/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Input types for search and video tools

type searchVideosInput struct {
	Query      string `json:"query" jsonschema:"Search query"`
	MaxResults int64  `json:"maxResults,omitempty" jsonschema:"Maximum results to return (default 5, max 50). Each search costs 100 API quota units"`
	Order      string `json:"order,omitempty" jsonschema:"Result order: relevance (default), date, rating, title, videoCount or viewCount"`
	ChannelID  string `json:"channelId,omitempty" jsonschema:"Restrict results to one channel id"`
	RegionCode string `json:"regionCode,omitempty" jsonschema:"ISO 3166-1 alpha-2 country code"`
}

func (in searchVideosInput) params() youtube.SearchParams {
	return youtube.SearchParams{
		MaxResults: in.MaxResults,
		Order:      in.Order,
		ChannelID:  in.ChannelID,
		RegionCode: in.RegionCode,
	}
}

type getVideoInput struct {
	VideoID string `json:"videoId" jsonschema:"YouTube video ID to look up"`
}

type getVideosInput struct {
	VideoIDs []string `json:"videoIds" jsonschema:"YouTube video IDs to look up. Results keep this order"`
}

// registerSearchTools registers the search and video MCP tools
func (s *Server) registerSearchTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_videos",
		Description: "Search YouTube for videos. Returns id, title, thumbnail, channel and watch URL per hit. Quota cost: 100 units.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchVideosInput) (*mcp.CallToolResult, any, error) {
		results, err := s.ytClient.Search(ctx, input.Query, input.params())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to search videos: %w", err)
		}
		return jsonResult(fmt.Sprintf("Found %d videos for query '%s'", len(results), input.Query), results)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_videos_verbose",
		Description: "Search YouTube and attach view, like, dislike and comment counts to every hit. Hits whose statistics could not be fetched carry an error instead of a value. Quota cost: 100 units plus 1 unit per hit.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchVideosInput) (*mcp.CallToolResult, any, error) {
		results, err := s.ytClient.SearchVerbose(ctx, input.Query, input.params())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to search videos: %w", err)
		}
		return jsonResult(fanOutSummary("videos", results), results)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_video",
		Description: "Look up statistics and title of one video by its ID. Quota cost: 1 unit.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getVideoInput) (*mcp.CallToolResult, any, error) {
		video, err := s.ytClient.GetVideo(ctx, input.VideoID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get video: %w", err)
		}
		return jsonResult(fmt.Sprintf("Found video: %s (%d views)", video.Title, video.Views), video)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_videos",
		Description: "Look up statistics of several videos concurrently. Every ID gets a slot with either a value or an error. Quota cost: 1 unit per video.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getVideosInput) (*mcp.CallToolResult, any, error) {
		if len(input.VideoIDs) == 0 {
			return nil, nil, fmt.Errorf("videoIds cannot be empty")
		}
		results := s.ytClient.GetVideos(ctx, input.VideoIDs)
		return jsonResult(fanOutSummary("videos", results), results)
	})
}

// jsonResult returns a one-line summary followed by the JSON encoding of v.
func jsonResult(summary string, v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: summary},
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func fanOutSummary[T any](noun string, results []youtube.Result[T]) string {
	failed := youtube.Failed(results)
	if failed == 0 {
		return fmt.Sprintf("Fetched %d %s", len(results), noun)
	}
	return fmt.Sprintf("Fetched %d of %d %s (%d failed)", len(results)-failed, len(results), noun, failed)
}
