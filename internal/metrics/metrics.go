// ================================
// internal/metrics/metrics.go - Self-monitoring for the file locator
// ================================

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locator_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "locator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Locate pipeline metrics
	LocateRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locator_requests_total",
			Help: "Total number of locate requests by wire encoding and outcome",
		},
		[]string{"encoding", "outcome"},
	)

	StatDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "locator_stat_duration_seconds",
			Help:    "Duration of the filesystem existence check",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	ExcludedHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locator_excluded_hits_total",
			Help: "Number of located files that live under an excluded directory",
		},
	)

	NavigationErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locator_navigation_errors_total",
			Help: "Number of navigation hand-offs that failed after a file was located",
		},
	)

	ProjectReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locator_project_reloads_total",
			Help: "Number of project model reloads",
		},
		[]string{"result"}, // success, error
	)
)

// RecordLocate records one pass through the locate pipeline.
func RecordLocate(encoding, outcome string, statTime time.Duration, statted, excluded bool) {
	LocateRequestsTotal.WithLabelValues(encoding, outcome).Inc()
	if statted {
		StatDuration.Observe(statTime.Seconds())
	}
	if excluded {
		ExcludedHitsTotal.Inc()
	}
}

// RecordProjectReload records the result of a project model reload.
func RecordProjectReload(err error) {
	if err != nil {
		ProjectReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	ProjectReloadsTotal.WithLabelValues("success").Inc()
}
