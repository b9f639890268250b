// Package observability provides Prometheus metrics for the snapshot loop.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the application.
type Metrics struct {
	PagesFetched prometheus.Counter
	PoolsStored  prometheus.Counter
	APIErrors    *prometheus.CounterVec
	LastSnapshot prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on the default registry.
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWith(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWith creates a Metrics instance registered on reg. Tests pass
// their own registry so instances do not collide.
func NewMetricsWith(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "whirlscope"
	}
	factory := promauto.With(reg)

	return &Metrics{
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "pages_fetched_total",
			Help:      "Total number of pool listing pages fetched",
		}),
		PoolsStored: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "pools_stored_total",
			Help:      "Total number of pool snapshot rows written to storage",
		}),
		APIErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Total number of API call failures by operation",
		}, []string{"operation"}),
		LastSnapshot: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "last_success_timestamp",
			Help:      "Unix timestamp of the last completed snapshot run",
		}),
	}
}

// RecordPageFetched increments the pages fetched counter.
func (m *Metrics) RecordPageFetched() {
	m.PagesFetched.Inc()
}

// RecordPoolsStored adds to the pools stored counter.
func (m *Metrics) RecordPoolsStored(n int) {
	m.PoolsStored.Add(float64(n))
}

// RecordAPIError increments the error counter for an operation.
func (m *Metrics) RecordAPIError(operation string) {
	m.APIErrors.WithLabelValues(operation).Inc()
}

// SetLastSnapshot records the completion time of a snapshot run.
func (m *Metrics) SetLastSnapshot(ts time.Time) {
	m.LastSnapshot.Set(float64(ts.Unix()))
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the instance commands hand to the runner when they do not
// build their own.
var DefaultMetrics = NewMetrics("")
