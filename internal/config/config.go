// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/secopslabs/soar-mcp-go/internal/gcs"
	"github.com/secopslabs/soar-mcp-go/internal/metrics"
	"github.com/secopslabs/soar-mcp-go/internal/soar"
)

// Config holds all configuration for the MCP server
type Config struct {
	Server  ServerConfig
	SOAR    SOARConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	Metrics metrics.Config
	GCS     gcs.Config
}

// ServerConfig selects the transport and the exposed tools
type ServerConfig struct {
	Mode     string   // "stdio" or "http"
	Profiles []string // profiles to expose, merged in order
	LogLevel string   // "debug", "info", "warn", "error"
}

// SOARConfig describes the backend the tools talk to
type SOARConfig struct {
	URL         string
	AppKey      string
	HTTPTimeout time.Duration
	ValidScopes []string // predefined scopes accepted without a backend round trip
	FetchScopes bool     // replace ValidScopes with GET /scopes at startup
}

// HTTPConfig configures the streamable HTTP transport
type HTTPConfig struct {
	Port               int
	AuthToken          string // static bearer token
	JWTSecret          string // HS256 secret for bearer JWTs
	JWTAudience        string
	RateLimitPerMinute int // 0 disables rate limiting
	MaxBodyBytes       int64
}

// RedisConfig holds the rate limit store location
type RedisConfig struct {
	URL string // empty disables Redis
}

// Load loads configuration from environment variables
// Priority: environment variables > .env file > defaults
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Mode:     getEnv("MCP_MODE", "stdio"),
			Profiles: getSliceEnv("MCP_PROFILE", []string{"all"}),
			LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		SOAR: SOARConfig{
			URL:         getEnv("SOAR_URL", ""),
			AppKey:      getEnv("SOAR_APP_KEY", ""),
			HTTPTimeout: getDurationEnv("SOAR_HTTP_TIMEOUT", 60*time.Second),
			ValidScopes: getSliceEnv("SOAR_VALID_SCOPES", append([]string(nil), soar.DefaultScopes...)),
			FetchScopes: getBoolEnv("SOAR_FETCH_SCOPES", false),
		},
		HTTP: HTTPConfig{
			Port:               getIntEnv("PORT", 8080),
			AuthToken:          getEnv("MCP_AUTH_TOKEN", ""),
			JWTSecret:          getEnv("MCP_JWT_SECRET", ""),
			JWTAudience:        getEnv("MCP_JWT_AUDIENCE", ""),
			RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MINUTE", 0),
			MaxBodyBytes:       int64(getIntEnv("MAX_REQUEST_BYTES", 10*1024*1024)),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Metrics: metrics.Config{
			Enabled:        getBoolEnv("ENABLE_METRICS", false),
			ProjectID:      getEnv("METRICS_PROJECT_ID", ""),
			ReportInterval: getDurationEnv("METRICS_REPORT_INTERVAL", metrics.DefaultReportInterval),
		},
	}

	bucket := getEnv("GCS_BUCKET_NAME", "")
	cfg.GCS = gcs.Config{
		BucketName:        bucket,
		TokenThreshold:    getIntEnv("GCS_TOKEN_THRESHOLD", gcs.DefaultTokenThreshold),
		URLExpiryHours:    getIntEnv("GCS_URL_EXPIRY_HOURS", gcs.DefaultURLExpiryHours),
		SignerServiceAcct: getEnv("GCS_SIGNER_SERVICE_ACCOUNT", ""),
		Enabled:           bucket != "",
		TempFileFallback:  getBoolEnv("GCS_TEMP_FILE_FALLBACK", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SOARClientConfig returns the settings for soar.NewClient
func (c *Config) SOARClientConfig() soar.Config {
	return soar.Config{
		BaseURL: c.SOAR.URL,
		AppKey:  c.SOAR.AppKey,
		Timeout: c.SOAR.HTTPTimeout,
	}
}

// HTTPAuthEnabled reports whether the HTTP transport requires a bearer token
func (c *Config) HTTPAuthEnabled() bool {
	return c.HTTP.AuthToken != "" || c.HTTP.JWTSecret != ""
}

// loadDotEnv fills unset variables from ENV_FILE (default .env). A missing
// file is not an error.
func loadDotEnv() error {
	path := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// getIntEnv gets an integer environment variable
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	_, err := fmt.Sscanf(value, "%d", &intValue)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getDurationEnv gets a duration environment variable
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// getSliceEnv gets a comma-separated list environment variable
func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// Validate validates the configuration. Profile names are checked later,
// once every tool package has registered.
func (c *Config) Validate() error {
	if c.Server.Mode != "stdio" && c.Server.Mode != "http" {
		return fmt.Errorf("invalid MCP_MODE: %s (must be 'stdio' or 'http')", c.Server.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Server.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.SOAR.URL == "" {
		return fmt.Errorf("SOAR_URL is required")
	}
	if c.SOAR.AppKey == "" {
		return fmt.Errorf("SOAR_APP_KEY is required")
	}
	if len(c.SOAR.ValidScopes) == 0 && !c.SOAR.FetchScopes {
		return fmt.Errorf("SOAR_VALID_SCOPES must list at least one scope unless SOAR_FETCH_SCOPES=true")
	}

	if c.Server.Mode == "http" {
		if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
			return fmt.Errorf("invalid PORT: %d", c.HTTP.Port)
		}
		if c.HTTP.RateLimitPerMinute < 0 {
			return fmt.Errorf("RATE_LIMIT_PER_MINUTE cannot be negative")
		}
	}

	if c.Metrics.ReportInterval <= 0 {
		return fmt.Errorf("METRICS_REPORT_INTERVAL must be positive")
	}

	return nil
}
