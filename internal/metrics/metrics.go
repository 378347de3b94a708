package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, route pattern, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// DatasetRows reports loaded rows per input table
	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "dataset_rows", Help: "Rows loaded per input table."},
		[]string{"table"},
	)
	// DatasetLoadSeconds is the duration of the one-time dataset load
	DatasetLoadSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "dataset_load_seconds", Help: "Time taken to load the dataset."},
	)
	// DatasetReady is 1 once the dataset has been published
	DatasetReady = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "dataset_ready", Help: "1 when the dataset is loaded."},
	)

	// CacheRequests counts view cache lookups by backend and result (hit, miss, error)
	CacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "view_cache_requests_total", Help: "View cache lookups by result."},
		[]string{"backend", "result"},
	)
	// RateLimited counts requests rejected by the rate limiter
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected with 429."},
	)
)

// RegisterDefault registers collectors to the default registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DatasetRows)
		Registry.MustRegister(DatasetLoadSeconds)
		Registry.MustRegister(DatasetReady)
		Registry.MustRegister(CacheRequests)
		Registry.MustRegister(RateLimited)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
