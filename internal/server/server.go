package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gxravel/ytdata/internal/rest"
	"github.com/gxravel/ytdata/internal/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with YouTube API client
type Server struct {
	mcpServer   *mcp.Server
	logger      *slog.Logger
	ytClient    youtube.API
	transport   string
	port        int
	corsOrigins []string
}

// Options configure the process surface of a Server.
type Options struct {
	Transport   string
	Port        int
	CORSOrigins []string
}

// NewServer creates a new MCP server instance with every YouTube tool registered.
func NewServer(logger *slog.Logger, ytClient youtube.API, opts Options) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "ytdata",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		mcpServer:   mcpServer,
		logger:      logger,
		ytClient:    ytClient,
		transport:   opts.Transport,
		port:        opts.Port,
		corsOrigins: opts.CORSOrigins,
	}

	s.registerSearchTools()
	s.registerChannelTools()

	return s
}

// Run starts the server with the configured transport.
// Use TRANSPORT=stdio (default) for local MCP clients or TRANSPORT=http for the
// streamable HTTP endpoint plus the REST surface.
func (s *Server) Run(ctx context.Context) error {
	switch s.transport {
	case "http":
		return s.runHTTP(ctx)
	default:
		return s.runStdio(ctx)
	}
}

// runStdio runs the MCP server on the stdio transport (for local MCP clients).
func (s *Server) runStdio(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP surface: REST endpoints plus MCP at /mcp.
func (s *Server) Handler() http.Handler {
	streamHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{
		Logger: s.logger,
	})

	router := rest.NewRouter(s.ytClient, s.logger, s.corsOrigins)
	router.Any("/mcp", gin.WrapH(streamHandler))
	return router
}

// runHTTP serves Handler until ctx is cancelled.
func (s *Server) runHTTP(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting MCP server", "transport", "streamable-http", "addr", addr)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		if err := httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Error("failed to shut down HTTP server", "error", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
