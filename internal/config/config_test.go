package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setBaseEnv sets the minimum environment for a successful Load
func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MCP_MODE", "MCP_PROFILE", "LOG_LEVEL", "SOAR_HTTP_TIMEOUT", "SOAR_VALID_SCOPES",
		"SOAR_FETCH_SCOPES", "PORT", "MCP_AUTH_TOKEN", "MCP_JWT_SECRET", "MCP_JWT_AUDIENCE",
		"REDIS_URL", "RATE_LIMIT_PER_MINUTE", "ENABLE_METRICS", "METRICS_PROJECT_ID",
		"METRICS_REPORT_INTERVAL", "GCS_BUCKET_NAME", "GCS_TOKEN_THRESHOLD",
		"GCS_URL_EXPIRY_HOURS", "GCS_SIGNER_SERVICE_ACCOUNT", "MAX_REQUEST_BYTES", "ENV_FILE",
		"GCS_TEMP_FILE_FALLBACK",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SOAR_URL", "https://soar.example.com/api/external/v1")
	t.Setenv("SOAR_APP_KEY", "test-app-key")
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		setBaseEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "stdio", cfg.Server.Mode)
		assert.Equal(t, []string{"all"}, cfg.Server.Profiles)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 60*time.Second, cfg.SOAR.HTTPTimeout)
		assert.Equal(t, []string{"All entities", "Only Suspicious"}, cfg.SOAR.ValidScopes)
		assert.False(t, cfg.SOAR.FetchScopes)
		assert.Equal(t, 8080, cfg.HTTP.Port)
		assert.False(t, cfg.HTTPAuthEnabled())
		assert.False(t, cfg.Metrics.Enabled)
		assert.Equal(t, 60*time.Second, cfg.Metrics.ReportInterval)
		assert.False(t, cfg.GCS.Enabled)
		assert.False(t, cfg.GCS.TempFileFallback)
		assert.Equal(t, 1000, cfg.GCS.TokenThreshold)
		assert.Equal(t, 24, cfg.GCS.URLExpiryHours)
	})

	t.Run("custom values", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("MCP_PROFILE", "case_management, virustotal,,wiz")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("SOAR_HTTP_TIMEOUT", "15s")
		t.Setenv("SOAR_VALID_SCOPES", "All entities,Only Suspicious")
		t.Setenv("SOAR_FETCH_SCOPES", "yes")
		t.Setenv("ENABLE_METRICS", "true")
		t.Setenv("METRICS_PROJECT_ID", "my-project")
		t.Setenv("METRICS_REPORT_INTERVAL", "30s")
		t.Setenv("GCS_BUCKET_NAME", "soar-results")
		t.Setenv("GCS_TOKEN_THRESHOLD", "5000")
		t.Setenv("GCS_SIGNER_SERVICE_ACCOUNT", "signer@project.iam.gserviceaccount.com")
		t.Setenv("GCS_TEMP_FILE_FALLBACK", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"case_management", "virustotal", "wiz"}, cfg.Server.Profiles)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 15*time.Second, cfg.SOAR.HTTPTimeout)
		assert.Equal(t, []string{"All entities", "Only Suspicious"}, cfg.SOAR.ValidScopes)
		assert.True(t, cfg.SOAR.FetchScopes)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "my-project", cfg.Metrics.ProjectID)
		assert.Equal(t, 30*time.Second, cfg.Metrics.ReportInterval)
		assert.True(t, cfg.GCS.Enabled)
		assert.Equal(t, "soar-results", cfg.GCS.BucketName)
		assert.Equal(t, 5000, cfg.GCS.TokenThreshold)
		assert.Equal(t, "signer@project.iam.gserviceaccount.com", cfg.GCS.SignerServiceAcct)
		assert.True(t, cfg.GCS.TempFileFallback)
	})

	t.Run("http mode", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("MCP_MODE", "http")
		t.Setenv("PORT", "9090")
		t.Setenv("MCP_JWT_SECRET", "hmac-secret")
		t.Setenv("MCP_JWT_AUDIENCE", "soar-mcp")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http", cfg.Server.Mode)
		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.True(t, cfg.HTTPAuthEnabled())
		assert.Equal(t, "soar-mcp", cfg.HTTP.JWTAudience)
		assert.Equal(t, 120, cfg.HTTP.RateLimitPerMinute)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	})

	t.Run("soar client config", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SOAR_HTTP_TIMEOUT", "5s")

		cfg, err := Load()
		require.NoError(t, err)

		sc := cfg.SOARClientConfig()
		assert.Equal(t, "https://soar.example.com/api/external/v1", sc.BaseURL)
		assert.Equal(t, "test-app-key", sc.AppKey)
		assert.Equal(t, 5*time.Second, sc.Timeout)
	})
}

func TestLoad_DotEnv(t *testing.T) {
	t.Run("fills unset variables", func(t *testing.T) {
		setBaseEnv(t)
		require.NoError(t, os.Unsetenv("MCP_PROFILE"))

		path := filepath.Join(t.TempDir(), "soar.env")
		require.NoError(t, os.WriteFile(path, []byte("MCP_PROFILE=case_management,wiz\nSOAR_APP_KEY=from-file\n"), 0o600))
		t.Setenv("ENV_FILE", path)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"case_management", "wiz"}, cfg.Server.Profiles)
		// The environment wins over the file
		assert.Equal(t, "test-app-key", cfg.SOAR.AppKey)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

		_, err := Load()
		require.NoError(t, err)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		message string
	}{
		{"invalid mode", map[string]string{"MCP_MODE": "grpc"}, "invalid MCP_MODE"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "trace"}, "invalid log level"},
		{"missing url", map[string]string{"SOAR_URL": ""}, "SOAR_URL is required"},
		{"missing app key", map[string]string{"SOAR_APP_KEY": ""}, "SOAR_APP_KEY is required"},
		{"invalid port", map[string]string{"MCP_MODE": "http", "PORT": "70000"}, "invalid PORT"},
		{"negative rate limit", map[string]string{"MCP_MODE": "http", "RATE_LIMIT_PER_MINUTE": "-1"}, "RATE_LIMIT_PER_MINUTE cannot be negative"},
		{"non-positive report interval", map[string]string{"METRICS_REPORT_INTERVAL": "0s"}, "METRICS_REPORT_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("getEnv", func(t *testing.T) {
		t.Setenv("TEST_VAR", "test-value")
		assert.Equal(t, "test-value", getEnv("TEST_VAR", "default"))
		t.Setenv("TEST_VAR", "")
		assert.Equal(t, "default", getEnv("TEST_VAR", "default"))
	})

	t.Run("getBoolEnv", func(t *testing.T) {
		tests := []struct {
			value    string
			expected bool
		}{
			{"true", true},
			{"TRUE", true},
			{"1", true},
			{"yes", true},
			{"false", false},
			{"0", false},
			{"no", false},
			{"", false},
		}

		for _, tt := range tests {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, getBoolEnv("TEST_BOOL", false), "value %q", tt.value)
		}
	})

	t.Run("getIntEnv", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		assert.Equal(t, 42, getIntEnv("TEST_INT", 0))
		t.Setenv("TEST_INT", "not-a-number")
		assert.Equal(t, 7, getIntEnv("TEST_INT", 7))
	})

	t.Run("getDurationEnv", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "10m")
		assert.Equal(t, 10*time.Minute, getDurationEnv("TEST_DURATION", time.Minute))
		t.Setenv("TEST_DURATION", "soon")
		assert.Equal(t, time.Minute, getDurationEnv("TEST_DURATION", time.Minute))
	})

	t.Run("getSliceEnv", func(t *testing.T) {
		t.Setenv("TEST_SLICE", " a , b ,")
		assert.Equal(t, []string{"a", "b"}, getSliceEnv("TEST_SLICE", nil))
		t.Setenv("TEST_SLICE", " , ")
		assert.Equal(t, []string{"x"}, getSliceEnv("TEST_SLICE", []string{"x"}))
	})
}
