// Package http serves the MCP tools over a JSON-RPC 2.0 HTTP endpoint.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/secopslabs/soar-mcp-go/internal/auth"
	"github.com/secopslabs/soar-mcp-go/internal/config"
	"github.com/secopslabs/soar-mcp-go/internal/gcs"
	"github.com/secopslabs/soar-mcp-go/internal/metrics"
	"github.com/secopslabs/soar-mcp-go/internal/ratelimit"
	"github.com/secopslabs/soar-mcp-go/internal/redis"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

const (
	// HeaderMCPTools narrows tools/list and tools/call to a CSV list of tools
	HeaderMCPTools = "X-MCP-Tools"

	serverName    = "SOAR MCP Server"
	serverVersion = "1.0.0"
)

// Backend is what tool handlers reach through the request context
type Backend struct {
	Cases   tools.CaseClient
	Invoker tools.ActionInvoker
	GCS     *gcs.Manager
	Metrics *metrics.Manager
}

// Server represents the HTTP server for MCP
type Server struct {
	config      *config.Config
	logger      *slog.Logger
	mux         *http.ServeMux
	server      *http.Server
	backend     Backend
	bearer      auth.BearerConfig
	redisClient *redis.Client
	rateLimiter ratelimit.Allower
}

// New creates a new HTTP server instance using standard library
func New(cfg *config.Config, logger *slog.Logger, backend Backend) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Fail at startup rather than on the first tools/list
	if _, err := tools.ResolveProfiles(cfg.Server.Profiles); err != nil {
		return nil, err
	}

	s := &Server{
		config:  cfg,
		logger:  logger,
		mux:     http.NewServeMux(),
		backend: backend,
		bearer: auth.BearerConfig{
			StaticToken: cfg.HTTP.AuthToken,
			JWTSecret:   cfg.HTTP.JWTSecret,
			JWTAudience: cfg.HTTP.JWTAudience,
		},
	}

	if cfg.HTTP.RateLimitPerMinute > 0 {
		if err := s.setupRateLimiter(); err != nil {
			return nil, err
		}
	}

	if !s.bearer.Enabled() {
		logger.Warn("HTTP bearer authentication disabled, every caller is anonymous")
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           s.Handler(),
		ReadTimeout:       5 * time.Minute, // sandbox actions can run for minutes
		WriteTimeout:      5 * time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	logger.Info("HTTP server initialized",
		"port", cfg.HTTP.Port,
		"auth_enabled", s.bearer.Enabled(),
		"rate_limit_per_minute", cfg.HTTP.RateLimitPerMinute)

	return s, nil
}

// setupRateLimiter shares limits through Redis when it is configured and
// falls back to per-replica buckets otherwise
func (s *Server) setupRateLimiter() error {
	if s.config.Redis.URL == "" {
		limiter, err := ratelimit.NewLocalLimiter(ratelimit.DefaultLocalKeys, s.logger)
		if err != nil {
			return err
		}
		s.logger.Warn("REDIS_URL not set, rate limits apply per replica")
		s.rateLimiter = limiter
		return nil
	}

	redisClient, err := redis.New(&redis.Config{URL: s.config.Redis.URL}, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create Redis client: %w", err)
	}
	s.redisClient = redisClient
	s.rateLimiter = ratelimit.NewLimiter(redisClient, s.logger)
	return nil
}

// Handler returns the routed handler with the full middleware chain
func (s *Server) Handler() http.Handler {
	return s.withMiddleware(s.mux)
}

// Serve starts the HTTP server and blocks until ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "port", s.config.HTTP.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		s.logger.Info("HTTP server stopped gracefully")
		return nil

	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// Close performs cleanup
func (s *Server) Close() error {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close Redis client", "error", err)
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}
	return nil
}

// requestContext attaches the backend and per-request values tools rely on
func (s *Server) requestContext(ctx context.Context) context.Context {
	ctx = tools.WithBackend(ctx, s.backend.Cases, s.backend.Invoker)
	if s.backend.GCS != nil {
		ctx = gcs.WithGCSManager(ctx, s.backend.GCS)
	}
	if s.backend.Metrics != nil {
		ctx = metrics.WithManager(ctx, s.backend.Metrics)
	}
	return ctx
}

// writeJSON writes a JSON response using ResponseWriter
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	rw := NewResponseWriter(w, s.logger)
	rw.WriteJSON(status, data)
}
