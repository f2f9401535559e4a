package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/compute/metadata"
	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	// Metric type prefix for custom metrics
	metricTypePrefix = "custom.googleapis.com/soar_mcp"

	// CreateTimeSeries accepts at most this many series per request
	maxSeriesPerRequest = 200
)

// toolCounters holds the cumulative counts of one tool
type toolCounters struct {
	invocations int64
	failures    int64
}

// Manager counts tool invocations, exposes them for Prometheus scraping and
// reports them to GCP Cloud Monitoring. Counting always happens in memory;
// reporting only when enabled and a project could be resolved.
type Manager struct {
	config      *Config
	client      *monitoring.MetricClient
	projectPath string
	logger      *slog.Logger
	instanceID  string

	mu        sync.RWMutex
	tools     map[string]*toolCounters
	startTime time.Time
	prom      *promCollectors

	// Background reporter
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewManager creates a new metrics manager.
// If reporting is disabled or the GCP client cannot be set up, the manager
// still counts but never reports.
func NewManager(ctx context.Context, config *Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		config:    config,
		logger:    logger,
		tools:     make(map[string]*toolCounters),
		startTime: time.Now(),
		prom:      newPromCollectors(),
		stopCh:    make(chan struct{}),
	}

	if !config.Enabled {
		logger.Info("GCP metrics reporting disabled")
		return m, nil
	}

	m.instanceID = getInstanceID()

	client, err := monitoring.NewMetricClient(ctx)
	if err != nil {
		logger.Warn("Failed to create GCP Monitoring client, metrics will not be reported",
			"error", err)
		return m, nil
	}

	projectID := config.ProjectID
	if projectID == "" {
		projectID = detectProjectID()
		if projectID == "" {
			logger.Warn("Could not detect GCP project ID, metrics will not be reported")
			client.Close()
			return m, nil
		}
	}
	m.client = client
	m.projectPath = fmt.Sprintf("projects/%s", projectID)

	logger.Info("GCP metrics reporting enabled",
		"project", projectID,
		"report_interval", config.ReportInterval,
		"instance_id", m.instanceID)

	// The reporter's lifecycle is controlled by stopCh, not by ctx
	m.wg.Add(1)
	go m.reportLoop()

	return m, nil
}

// RecordInvocation counts one call of a tool
func (m *Manager) RecordInvocation(tool string, failed bool) {
	if m == nil {
		return
	}

	m.mu.Lock()
	c, ok := m.tools[tool]
	if !ok {
		c = &toolCounters{}
		m.tools[tool] = c
	}
	c.invocations++
	if failed {
		c.failures++
	}
	m.mu.Unlock()

	m.prom.record(tool, failed)
	m.logger.Debug("tool_invocation", "tool", tool, "failed", failed)
}

// Counts returns the cumulative invocation and failure counts of a tool
func (m *Manager) Counts(tool string) (invocations, failures int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.tools[tool]; ok {
		return c.invocations, c.failures
	}
	return 0, 0
}

// Totals returns the invocation and failure counts across all tools
func (m *Manager) Totals() (invocations, failures int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.tools {
		invocations += c.invocations
		failures += c.failures
	}
	return invocations, failures
}

// Close stops the background reporter and closes the client
func (m *Manager) Close() error {
	if m.client == nil {
		return nil
	}

	close(m.stopCh)
	m.wg.Wait()

	return m.client.Close()
}

// reportLoop runs the periodic metric reporting
func (m *Manager) reportLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.ReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			// Final report before shutdown
			m.report()
			return
		case <-ticker.C:
			m.report()
		}
	}
}

// report sends the current counters to GCP Monitoring
func (m *Manager) report() {
	if m.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	series := m.buildTimeSeries(time.Now())
	if len(series) == 0 {
		return
	}

	for start := 0; start < len(series); start += maxSeriesPerRequest {
		end := start + maxSeriesPerRequest
		if end > len(series) {
			end = len(series)
		}
		err := m.client.CreateTimeSeries(ctx, &monitoringpb.CreateTimeSeriesRequest{
			Name:       m.projectPath,
			TimeSeries: series[start:end],
		})
		if err != nil {
			m.logger.Warn("Failed to report metrics to GCP Monitoring",
				"error", err,
				"series", end-start)
			return
		}
	}

	m.logger.Debug("Reported metrics to GCP Monitoring", "series", len(series))
}

// buildTimeSeries snapshots the counters into cumulative series, two per
// tool, in a stable order
func (m *Manager) buildTimeSeries(now time.Time) []*monitoringpb.TimeSeries {
	m.mu.RLock()
	names := make([]string, 0, len(m.tools))
	snapshot := make(map[string]toolCounters, len(m.tools))
	for name, c := range m.tools {
		names = append(names, name)
		snapshot[name] = *c
	}
	m.mu.RUnlock()

	sort.Strings(names)

	series := make([]*monitoringpb.TimeSeries, 0, 2*len(names))
	for _, name := range names {
		c := snapshot[name]
		series = append(series,
			m.createCumulativeTimeSeries("tool_invocations", name, c.invocations, m.startTime, now),
			m.createCumulativeTimeSeries("tool_failures", name, c.failures, m.startTime, now),
		)
	}
	return series
}

// createCumulativeTimeSeries creates a cumulative time series for a counter metric
func (m *Manager) createCumulativeTimeSeries(metricName, tool string, value int64, startTime, endTime time.Time) *monitoringpb.TimeSeries {
	return &monitoringpb.TimeSeries{
		Metric: &metric.Metric{
			Type: fmt.Sprintf("%s/%s", metricTypePrefix, metricName),
			Labels: map[string]string{
				"instance_id": m.instanceID,
				"tool":        tool,
			},
		},
		Resource: &monitoredres.MonitoredResource{
			Type: "global",
			Labels: map[string]string{
				"project_id": extractProjectID(m.projectPath),
			},
		},
		MetricKind: metric.MetricDescriptor_CUMULATIVE,
		ValueType:  metric.MetricDescriptor_INT64,
		Points: []*monitoringpb.Point{
			{
				Interval: &monitoringpb.TimeInterval{
					StartTime: timestamppb.New(startTime),
					EndTime:   timestamppb.New(endTime),
				},
				Value: &monitoringpb.TypedValue{
					Value: &monitoringpb.TypedValue_Int64Value{
						Int64Value: value,
					},
				},
			},
		},
	}
}

// detectProjectID attempts to detect the GCP project ID from environment or metadata server
func detectProjectID() string {
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT", "GCP_PROJECT"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}

	// Works in Cloud Run, GCE and GKE
	if metadata.OnGCE() {
		if id, err := metadata.ProjectIDWithContext(context.Background()); err == nil {
			return id
		}
	}

	return ""
}

// getInstanceID returns a unique instance identifier for metric labels
func getInstanceID() string {
	if rev := os.Getenv("K_REVISION"); rev != "" {
		return rev
	}
	if instance := os.Getenv("INSTANCE_ID"); instance != "" {
		return instance
	}
	if hostname, err := os.Hostname(); err == nil {
		return hostname
	}
	return "unknown"
}

// extractProjectID extracts the project ID from a "projects/PROJECT_ID" path
func extractProjectID(projectPath string) string {
	const prefix = "projects/"
	if len(projectPath) > len(prefix) {
		return projectPath[len(prefix):]
	}
	return ""
}
