package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// promCollectors mirrors the tool counters for scraping. Each Manager owns
// its registry so several managers can coexist in one process.
type promCollectors struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

func newPromCollectors() *promCollectors {
	p := &promCollectors{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soar_mcp",
			Name:      "tool_invocations_total",
			Help:      "Tool calls, by tool.",
		}, []string{"tool"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soar_mcp",
			Name:      "tool_failures_total",
			Help:      "Tool calls that returned an error or an error result, by tool.",
		}, []string{"tool"}),
	}

	p.registry.MustRegister(
		p.invocations,
		p.failures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *promCollectors) record(tool string, failed bool) {
	p.invocations.WithLabelValues(tool).Inc()
	if failed {
		p.failures.WithLabelValues(tool).Inc()
	}
}

// Handler serves the counters in the Prometheus text format
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.prom.registry, promhttp.HandlerOpts{})
}
