package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the dedicated registry served on /api/metrics. A custom
// registry keeps third-party default collectors from leaking into it.
var Registry = prometheus.NewRegistry()

var (
	// Custom histogram buckets optimized for API response times ranging from
	// milliseconds to the 30s upstream timeout
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestTotal    *prometheus.CounterVec
	ActiveRequests      *prometheus.GaugeVec

	// Upstream backend client metrics
	BackendRequestDuration *prometheus.HistogramVec
	BackendRequestTotal    *prometheus.CounterVec

	// Cache Metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Business Metrics
	Registrations   *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
	AIConfigSaves   *prometheus.CounterVec
	TariffFallbacks prometheus.Counter

	// Infrastructure Metrics
	GoRoutines prometheus.Gauge
	HeapAlloc  prometheus.Gauge
)

// Init registers all metric families on the registry with the service name
// as a constant label. Must be called once before the first request.
func Init(serviceName string) {
	factory := promauto.With(Registry)
	constLabels := prometheus.Labels{"service_name": serviceName}

	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_server_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     CustomAPIBuckets,
			ConstLabels: constLabels,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "http_server_request_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "http_server_active_requests",
			Help:        "Number of active HTTP requests",
			ConstLabels: constLabels,
		},
		[]string{"http_request_method"},
	)

	BackendRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "backend_client_operation_duration_seconds",
			Help:        "Upstream backend operation duration in seconds",
			Buckets:     CustomAPIBuckets,
			ConstLabels: constLabels,
		},
		[]string{"operation", "status"},
	)

	BackendRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "backend_client_operation_total",
			Help:        "Total number of upstream backend operations",
			ConstLabels: constLabels,
		},
		[]string{"operation", "status"},
	)

	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "cache_hits_total",
			Help:        "Total number of cache hits",
			ConstLabels: constLabels,
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "cache_misses_total",
			Help:        "Total number of cache misses",
			ConstLabels: constLabels,
		},
		[]string{"cache_name"},
	)

	Registrations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "savdoai_registrations_total",
			Help:        "Total account registration attempts",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)

	LoginAttempts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "savdoai_login_attempts_total",
			Help:        "Total login attempts proxied to the backend",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)

	AIConfigSaves = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "savdoai_ai_config_saves_total",
			Help:        "Total AI assistant configuration save attempts",
			ConstLabels: constLabels,
		},
		[]string{"status"},
	)

	TariffFallbacks = factory.NewCounter(
		prometheus.CounterOpts{
			Name:        "savdoai_tariff_fallbacks_total",
			Help:        "Times the embedded default tariff list was served because the backend was unreachable",
			ConstLabels: constLabels,
		},
	)

	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name:        "process_runtime_go_goroutines",
			Help:        "Number of goroutines",
			ConstLabels: constLabels,
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name:        "process_runtime_go_mem_heap_alloc_bytes",
			Help:        "Heap allocated bytes",
			ConstLabels: constLabels,
		},
	)
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
