package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "itemnav"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

// Page list metrics
var (
	PagelistRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pagelist_renders_total",
			Help:      "Total number of page lists rendered",
		},
		[]string{"variant", "outcome"},
	)

	PagelistEntries = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pagelist_entries",
			Help:      "Number of entries per rendered page list",
			Buckets:   []float64{0, 3, 5, 7, 9, 11, 15, 25},
		},
		[]string{"variant"},
	)
)

// Render outcomes
const (
	OutcomeRendered = "rendered"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

// RecordPagelist counts one render of variant that produced entries entries.
func RecordPagelist(variant string, entries int, err error) {
	outcome := OutcomeRendered
	switch {
	case err != nil:
		outcome = OutcomeError
	case entries == 0:
		outcome = OutcomeEmpty
	}
	PagelistRendersTotal.WithLabelValues(variant, outcome).Inc()
	if err == nil {
		PagelistEntries.WithLabelValues(variant).Observe(float64(entries))
	}
}
