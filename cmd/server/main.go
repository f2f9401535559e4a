package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/secopslabs/soar-mcp-go/internal/config"
	"github.com/secopslabs/soar-mcp-go/internal/server"

	// Import tool packages to trigger init() registration
	_ "github.com/secopslabs/soar-mcp-go/internal/tools/cases"        // Case, alert and entity tools
	_ "github.com/secopslabs/soar-mcp-go/internal/tools/integrations" // Integration action catalog
)

func main() {
	// Load configuration first to determine log level
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: server.ParseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("Starting SOAR MCP Server",
		"mode", cfg.Server.Mode,
		"profiles", cfg.Server.Profiles,
		"soar_url", cfg.SOAR.URL)

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Error during server cleanup", "error", err)
		}
	}()

	if err := srv.Serve(ctx); err != nil {
		logger.Error("Server error", "error", err)
		stop()
		srv.Close()
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
