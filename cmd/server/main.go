package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/gxravel/ytdata/internal/auth"
	"github.com/gxravel/ytdata/internal/config"
	"github.com/gxravel/ytdata/internal/server"
	"github.com/gxravel/ytdata/internal/youtube"
)

func main() {
	// stdout belongs to the MCP stdio transport
	log.SetOutput(os.Stderr)
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = os.Stderr

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	opts, err := auth.ClientOptions(ctx, auth.Credentials{
		APIKey:       cfg.YouTubeAPIKey,
		TokenJSON:    cfg.OAuthTokenJSON,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		TokenPath:    cfg.OAuthTokenPath,
		Endpoint:     cfg.Endpoint,
	}, logger)
	if err != nil {
		logger.Error("failed to configure credentials", "error", err)
		os.Exit(1)
	}

	ytClient, err := youtube.NewClient(ctx, youtube.Settings{
		Search: youtube.SearchParams{
			MaxResults: cfg.SearchMaxResults,
			Order:      cfg.SearchOrder,
			SafeSearch: cfg.SearchSafeSearch,
		},
		ChannelVideosMax:  cfg.ChannelVideosMax,
		FanOutLimit:       cfg.FanOutLimit,
		RequestsPerSecond: cfg.FanOutRPS,
	}, logger, opts...)
	if err != nil {
		logger.Error("failed to create youtube client", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(logger, ytClient, server.Options{
		Transport:   cfg.Transport,
		Port:        cfg.Port,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
