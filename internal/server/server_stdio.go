package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/secopslabs/soar-mcp-go/internal/config"
	"github.com/secopslabs/soar-mcp-go/internal/gcs"
	"github.com/secopslabs/soar-mcp-go/internal/metrics"
	"github.com/secopslabs/soar-mcp-go/internal/resources"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// STDIOServer handles STDIO mode MCP server
type STDIOServer struct {
	mcpServer *server.MCPServer
	config    *config.Config
	backend   *backend
	toolNames []string
	logger    *slog.Logger
}

// NewSTDIOServer creates a new STDIO mode server
func NewSTDIOServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*STDIOServer, error) {
	b, err := newBackend(ctx, cfg, logger, true)
	if err != nil {
		return nil, err
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s := &STDIOServer{
		mcpServer: mcpServer,
		config:    cfg,
		backend:   b,
		logger:    logger,
	}

	if err := s.registerTools(); err != nil {
		b.Close(logger)
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	logger.Info("STDIO server initialized", "profiles", cfg.Server.Profiles)

	return s, nil
}

// registerTools registers the tools of the configured profiles and the
// resource describing them
func (s *STDIOServer) registerTools() error {
	if err := tools.AddToolsToServer(s.mcpServer, s.config.Server.Profiles); err != nil {
		return err
	}

	names, err := tools.ResolveProfiles(s.config.Server.Profiles)
	if err != nil {
		return err
	}
	s.toolNames = names
	resources.AddResourcesToServer(s.mcpServer, names)
	s.logger.Info("Registered tools", "count", len(names))

	return nil
}

// contextFunc injects the backend, GCS and metrics into every request
func (s *STDIOServer) contextFunc(reqCtx context.Context) context.Context {
	reqCtx = tools.WithBackend(reqCtx, s.backend.client, s.backend.invoker)

	if s.backend.gcs != nil {
		reqCtx = gcs.WithGCSManager(reqCtx, s.backend.gcs)
	}
	if s.backend.metrics != nil {
		reqCtx = metrics.WithManager(reqCtx, s.backend.metrics)
	}

	return reqCtx
}

// Serve starts the STDIO server
func (s *STDIOServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting STDIO server")
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(s.contextFunc))
}

// Close gracefully shuts down the STDIO server and releases resources
func (s *STDIOServer) Close() error {
	s.logger.Info("Shutting down STDIO server, cleaning up resources...")
	s.backend.Close(s.logger)
	s.logger.Info("STDIO server shutdown complete")
	return nil
}
