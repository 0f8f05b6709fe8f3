package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Model metrics
	ModelRequests *prometheus.CounterVec
	ModelDuration prometheus.Histogram

	// Document metrics
	DocumentsProcessed *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Model metrics
		ModelRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_model_requests_total",
				Help: "Total model generation requests by status",
			},
			[]string{"status"},
		),
		ModelDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintrack_model_request_duration_seconds",
			Help:    "Duration of model generation requests",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		// Document metrics
		DocumentsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_documents_processed_total",
				Help: "Total uploaded documents by content type and outcome",
			},
			[]string{"content_type", "status"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fintrack_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}
