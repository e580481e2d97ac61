// Package metrics declares the Prometheus collectors exported by the
// service: HTTP server metrics, spreadsheet-relay client metrics and
// database metrics consumed by pkg/dbmetrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector registered by the service.
type Metrics struct {
	// HTTP server
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Spreadsheet relay client
	RelayRequestsTotal   *prometheus.CounterVec
	RelayRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration *prometheus.HistogramVec
	DBPoolOpen      *prometheus.GaugeVec
	DBPoolInUse     *prometheus.GaugeVec
	DBPoolIdle      *prometheus.GaugeVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		RelayRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "sheets_relay_requests_total",
			Help:        "Requests to the spreadsheet relay by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		RelayRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "sheets_relay_request_duration_seconds",
			Help:        "Spreadsheet relay request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		DBPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}
}

// ObserveRelayRequest records one relay call outcome.
func (m *Metrics) ObserveRelayRequest(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.RelayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.RelayRequestDuration.WithLabelValues(operation).Observe(seconds)
}
