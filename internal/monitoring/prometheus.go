// Package monitoring exposes the locator's Prometheus metrics over HTTP.
//
// Usage:
//
//	router := gin.New()
//	router.Use(monitoring.InFlightMiddleware())
//	monitoring.SetupPrometheusMetrics(router, "/metrics", config.ServiceVersion)
//
// Locate metrics themselves live in internal/metrics and are recorded by
// the locator; this package only publishes them along with build info and
// an in-flight gauge.
package monitoring

import (
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMetricsPath is used when no path is configured
const DefaultMetricsPath = "/metrics"

var inFlightRequests = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "locator_http_requests_in_flight",
		Help: "Number of HTTP requests currently being served",
	},
)

// SetupPrometheusMetrics registers build info and serves the default
// registry at path.
func SetupPrometheusMetrics(router gin.IRoutes, path, version string) {
	if path == "" {
		path = DefaultMetricsPath
	}

	// Ignore AlreadyRegistered so tests can build several routers.
	_ = prometheus.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "locator_build_info",
		Help: "Build information for the file locator",
		ConstLabels: prometheus.Labels{
			"version":    version,
			"go_version": runtime.Version(),
		},
	}, func() float64 { return 1 }))
	_ = prometheus.Register(inFlightRequests)

	router.GET(path, gin.WrapH(promhttp.Handler()))
}

// InFlightMiddleware tracks concurrently served requests
func InFlightMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		inFlightRequests.Inc()
		defer inFlightRequests.Dec()
		c.Next()
	}
}
