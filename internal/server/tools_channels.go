package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Input types for channel tools

type getChannelInput struct {
	Username string `json:"username" jsonschema:"Legacy channel username. A channel ID is accepted as a fallback"`
}

type getChannelByIDInput struct {
	ChannelID string `json:"channelId" jsonschema:"Channel ID (starts with UC)"`
}

type getChannelVideosInput struct {
	Username   string `json:"username" jsonschema:"Channel username or ID"`
	PlaylistID string `json:"playlistId,omitempty" jsonschema:"Uploads playlist ID. Resolved from the channel when empty"`
}

// registerChannelTools registers all channel-related MCP tools
func (s *Server) registerChannelTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_channel",
		Description: "Look up a channel by legacy username, falling back to treating the input as a channel ID. Quota cost: 1-2 units.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getChannelInput) (*mcp.CallToolResult, any, error) {
		channel, err := s.ytClient.GetChannel(ctx, input.Username)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get channel: %w", err)
		}
		return jsonResult(fmt.Sprintf("Found channel: %s (%d subscribers)", channel.Title, channel.Followers), channel)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_channel_by_id",
		Description: "Look up a channel by its channel ID. Quota cost: 1 unit.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getChannelByIDInput) (*mcp.CallToolResult, any, error) {
		channel, err := s.ytClient.GetChannelByID(ctx, input.ChannelID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get channel: %w", err)
		}
		return jsonResult(fmt.Sprintf("Found channel: %s (%d subscribers)", channel.Title, channel.Followers), channel)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_channel_videos",
		Description: "List the IDs of a channel's latest uploads. Quota cost: 1 unit per 50 videos, plus channel lookup when no playlist ID is given.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getChannelVideosInput) (*mcp.CallToolResult, any, error) {
		ids, err := s.ytClient.GetChannelVideosList(ctx, input.Username, input.PlaylistID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list channel videos: %w", err)
		}
		return jsonResult(fmt.Sprintf("Found %d uploads", len(ids)), ids)
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_channel_verbose",
		Description: "Look up a channel and the statistics of its latest uploads in one call.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getChannelInput) (*mcp.CallToolResult, any, error) {
		result, err := s.ytClient.GetChannelVerbose(ctx, input.Username)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get channel: %w", err)
		}
		return jsonResult(fmt.Sprintf("Channel %s: %s", result.User.Title, fanOutSummary("uploads", result.Posts)), result)
	})
}
