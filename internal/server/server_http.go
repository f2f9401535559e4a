package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/secopslabs/soar-mcp-go/internal/config"
	httpserver "github.com/secopslabs/soar-mcp-go/internal/http"
)

// HTTPServerWrapper handles HTTP mode MCP server
type HTTPServerWrapper struct {
	httpServer *httpserver.Server
	config     *config.Config
	backend    *backend
	logger     *slog.Logger
}

// NewHTTPServer creates a new HTTP mode server
func NewHTTPServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*HTTPServerWrapper, error) {
	b, err := newBackend(ctx, cfg, logger, false)
	if err != nil {
		return nil, err
	}

	httpSrv, err := httpserver.New(cfg, logger, b.httpBackend())
	if err != nil {
		b.Close(logger)
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	logger.Info("HTTP server initialized",
		"profiles", cfg.Server.Profiles,
		"port", cfg.HTTP.Port)

	return &HTTPServerWrapper{
		httpServer: httpSrv,
		config:     cfg,
		backend:    b,
		logger:     logger,
	}, nil
}

// Serve starts the HTTP server
func (s *HTTPServerWrapper) Serve(ctx context.Context) error {
	return s.httpServer.Serve(ctx)
}

// Close gracefully shuts down the HTTP server and releases resources
func (s *HTTPServerWrapper) Close() error {
	s.logger.Info("Shutting down HTTP server, cleaning up resources...")

	s.backend.Close(s.logger)

	if err := s.httpServer.Close(); err != nil {
		s.logger.Error("Failed to close HTTP server", "error", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
