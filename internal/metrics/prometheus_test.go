package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounters(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)

	mgr.RecordInvocation("virustotal_ping", false)
	mgr.RecordInvocation("virustotal_ping", true)
	mgr.RecordInvocation("list_cases", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(mgr.prom.invocations.WithLabelValues("virustotal_ping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mgr.prom.failures.WithLabelValues("virustotal_ping")))
	assert.Equal(t, 0.0, testutil.ToFloat64(mgr.prom.failures.WithLabelValues("list_cases")))
}

func TestManagerHandler(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)
	mgr.RecordInvocation("wiz_ping", true)

	w := httptest.NewRecorder()
	mgr.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `soar_mcp_tool_invocations_total{tool="wiz_ping"} 1`)
	assert.Contains(t, body, `soar_mcp_tool_failures_total{tool="wiz_ping"} 1`)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestManagers_HaveIndependentRegistries(t *testing.T) {
	first, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)
	second, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)

	first.RecordInvocation("list_cases", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.prom.invocations.WithLabelValues("list_cases")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.prom.invocations.WithLabelValues("list_cases")))
}
