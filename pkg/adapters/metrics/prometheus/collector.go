package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records operational metrics using Prometheus
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storageUp           prometheus.Gauge
	storageChecks       *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector.
//
// Metrics register on the default registry, so construct at most one
// Collector per process.
func NewCollector() *Collector {
	return &Collector{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		),
		storageUp: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_storage_up",
				Help: "Whether the last storage health check succeeded (1) or failed (0)",
			},
		),
		storageChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_storage_health_checks_total",
				Help: "Total number of storage health checks by outcome",
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetStorageUp records the outcome of the latest storage health check
func (c *Collector) SetStorageUp(up bool) {
	if up {
		c.storageUp.Set(1)
		return
	}
	c.storageUp.Set(0)
}

// IncStorageChecks increments the storage health check counter
func (c *Collector) IncStorageChecks(status string) {
	c.storageChecks.WithLabelValues(status).Inc()
}
