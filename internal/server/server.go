// Package server wires configuration, the SOAR backend and the tool
// registry into a runnable stdio or HTTP MCP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/secopslabs/soar-mcp-go/internal/config"
	"github.com/secopslabs/soar-mcp-go/internal/gcs"
	httpserver "github.com/secopslabs/soar-mcp-go/internal/http"
	"github.com/secopslabs/soar-mcp-go/internal/metrics"
	"github.com/secopslabs/soar-mcp-go/internal/soar"
)

const (
	serverName    = "SOAR MCP Server"
	serverVersion = "1.0.0"
)

// Server is a transport that can be served and closed
type Server interface {
	Serve(ctx context.Context) error
	Close() error
}

// ParseLogLevel converts a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates the server for the configured mode
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Server, error) {
	switch cfg.Server.Mode {
	case "stdio":
		return NewSTDIOServer(ctx, cfg, logger)
	case "http":
		return NewHTTPServer(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown server mode: %s", cfg.Server.Mode)
	}
}

// backend bundles the long-lived dependencies shared by both transports
type backend struct {
	client  *soar.Client
	invoker *soar.Invoker
	gcs     *gcs.Manager
	metrics *metrics.Manager
}

// newBackend builds the SOAR client and invoker plus the optional GCS and
// metrics managers. GCS and metrics failures degrade instead of aborting.
// Large results are only offloaded when a bucket is configured, or when a
// temp file is allowed and requested; otherwise they are returned inline.
func newBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger, allowTempFiles bool) (*backend, error) {
	client, err := soar.NewClient(cfg.SOARClientConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOAR client: %w", err)
	}

	scopes := loadScopes(ctx, client, cfg.SOAR, logger)
	if scopes.Len() == 0 {
		return nil, fmt.Errorf("no valid scopes configured")
	}

	b := &backend{
		client:  client,
		invoker: soar.NewInvoker(client, scopes, logger),
	}

	gcsConfig := cfg.GCS
	if gcsConfig.TempFileFallback && !allowTempFiles {
		logger.Warn("GCS_TEMP_FILE_FALLBACK ignored, remote callers cannot read local files")
		gcsConfig.TempFileFallback = false
	}

	if gcsConfig.Offloads() {
		gcsManager, err := gcs.NewManager(ctx, &gcsConfig, logger)
		if err != nil {
			logger.Warn("Failed to initialize GCS manager, large results will be returned inline", "error", err)
		} else {
			b.gcs = gcsManager
			logger.Info("Large result offload enabled",
				"bucket", gcsConfig.BucketName,
				"temp_file_fallback", gcsConfig.TempFileFallback,
				"threshold", gcsConfig.TokenThreshold)
		}
	} else {
		logger.Info("No GCS bucket configured, large results are returned inline")
	}

	metricsManager, err := metrics.NewManager(ctx, &cfg.Metrics, logger)
	if err != nil {
		logger.Warn("Failed to initialize metrics manager", "error", err)
	} else {
		b.metrics = metricsManager
	}

	return b, nil
}

// loadScopes returns the configured scope set, replaced by the backend's
// list when fetching is enabled and succeeds
func loadScopes(ctx context.Context, client *soar.Client, cfg config.SOARConfig, logger *slog.Logger) soar.ScopeSet {
	configured := soar.NewScopeSet(cfg.ValidScopes...)
	if !cfg.FetchScopes {
		return configured
	}

	names, err := client.ListScopes(ctx)
	if err != nil {
		logger.Warn("Failed to fetch scopes, using configured list", "error", err, "scopes", configured.Sorted())
		return configured
	}

	fetched := soar.NewScopeSet(names...)
	if fetched.Len() == 0 {
		logger.Warn("Backend returned no scopes, using configured list", "scopes", configured.Sorted())
		return configured
	}

	logger.Info("Loaded scopes from backend", "count", fetched.Len())
	return fetched
}

// httpBackend exposes the backend to the HTTP transport
func (b *backend) httpBackend() httpserver.Backend {
	return httpserver.Backend{
		Cases:   b.client,
		Invoker: b.invoker,
		GCS:     b.gcs,
		Metrics: b.metrics,
	}
}

// Close releases the GCS and metrics clients
func (b *backend) Close(logger *slog.Logger) {
	if b.gcs != nil {
		if err := b.gcs.Close(); err != nil {
			logger.Warn("Failed to close GCS manager", "error", err)
		}
	}
	if b.metrics != nil {
		if err := b.metrics.Close(); err != nil {
			logger.Warn("Failed to close metrics manager", "error", err)
		}
	}
}
