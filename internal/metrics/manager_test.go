package metrics

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/api/metric"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewManager_Disabled(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{Enabled: false}, testLogger())
	require.NoError(t, err)
	require.NotNil(t, mgr)
	assert.Nil(t, mgr.client, "client should be nil when disabled")

	// Counting still works without a reporter
	mgr.RecordInvocation("wiz_ping", false)
	mgr.RecordInvocation("wiz_ping", true)

	invocations, failures := mgr.Counts("wiz_ping")
	assert.Equal(t, int64(2), invocations)
	assert.Equal(t, int64(1), failures)

	assert.NoError(t, mgr.Close())
}

func TestManager_NilSafe(t *testing.T) {
	var mgr *Manager
	assert.NotPanics(t, func() { mgr.RecordInvocation("x", true) })
}

func TestManager_ConcurrentRecording(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mgr.RecordInvocation("list_cases", i%5 == 0)
		}(i)
	}
	wg.Wait()

	invocations, failures := mgr.Counts("list_cases")
	assert.Equal(t, int64(50), invocations)
	assert.Equal(t, int64(10), failures)

	total, totalFailures := mgr.Totals()
	assert.Equal(t, int64(50), total)
	assert.Equal(t, int64(10), totalFailures)
}

func TestBuildTimeSeries(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)
	mgr.projectPath = "projects/test-project"
	mgr.instanceID = "rev-1"

	mgr.RecordInvocation("wiz_ping", false)
	mgr.RecordInvocation("jira_ping", true)

	series := mgr.buildTimeSeries(time.Now())
	require.Len(t, series, 4)

	// Sorted by tool name, invocations before failures
	assert.Equal(t, "jira_ping", series[0].Metric.Labels["tool"])
	assert.Equal(t, "custom.googleapis.com/soar_mcp/tool_invocations", series[0].Metric.Type)
	assert.Equal(t, "custom.googleapis.com/soar_mcp/tool_failures", series[1].Metric.Type)
	assert.Equal(t, int64(1), series[1].Points[0].Value.GetInt64Value())
	assert.Equal(t, "wiz_ping", series[2].Metric.Labels["tool"])
	assert.Equal(t, int64(0), series[3].Points[0].Value.GetInt64Value())

	for _, s := range series {
		assert.Equal(t, metric.MetricDescriptor_CUMULATIVE, s.MetricKind)
		assert.Equal(t, "test-project", s.Resource.Labels["project_id"])
		assert.Equal(t, "rev-1", s.Metric.Labels["instance_id"])
	}
}

func TestExtractProjectID(t *testing.T) {
	assert.Equal(t, "my-proj", extractProjectID("projects/my-proj"))
	assert.Equal(t, "", extractProjectID("projects/"))
	assert.Equal(t, "", extractProjectID(""))
}

func TestDetectProjectID_FromEnv(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "env-project")
	assert.Equal(t, "env-project", detectProjectID())
}

func TestDetectProjectID_NoSource(t *testing.T) {
	if metadata.OnGCE() {
		t.Skip("running on GCE, metadata server provides a project")
	}
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "")
	assert.Equal(t, "", detectProjectID())
}

func TestContextRoundTrip(t *testing.T) {
	mgr, err := NewManager(context.Background(), &Config{}, testLogger())
	require.NoError(t, err)

	assert.Nil(t, GetManager(context.Background()))
	assert.Same(t, mgr, GetManager(WithManager(context.Background(), mgr)))
}
