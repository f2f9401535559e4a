package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/ready", s.handleReady)
	if s.backend.Metrics != nil {
		s.mux.Handle("/metrics", s.backend.Metrics.Handler())
	}

	// /mcp serves the configured profiles, /mcp/{profile} a single one
	s.mux.HandleFunc("/mcp", s.handleMCPRequest)
	s.mux.HandleFunc("/mcp/", s.handleMCPRequest)
}

// isMCPPath reports whether a path is served by the JSON-RPC endpoint
func isMCPPath(path string) bool {
	return path == "/mcp" || strings.HasPrefix(path, "/mcp/")
}

// profilesForPath returns the profiles a request path selects
func (s *Server) profilesForPath(path string) ([]string, bool) {
	profile := strings.Trim(strings.TrimPrefix(path, "/mcp"), "/")
	if profile == "" {
		return s.config.Server.Profiles, true
	}
	if strings.Contains(profile, "/") {
		return nil, false
	}
	if _, ok := tools.GetToolsForProfile(profile); !ok {
		return nil, false
	}
	return []string{profile}, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]bool{
		"backend": s.backend.Cases != nil && s.backend.Invoker != nil,
	}
	if s.redisClient != nil {
		checks["redis"] = s.redisClient.Ping(ctx) == nil
	}

	status := "ready"
	statusCode := http.StatusOK
	for _, ready := range checks {
		if !ready {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	s.writeJSON(w, statusCode, map[string]interface{}{
		"status": status,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
