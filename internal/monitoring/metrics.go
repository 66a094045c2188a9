package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ArticlesProcessedTotal *prometheus.CounterVec
	ErrorsTotal            *prometheus.CounterVec
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ArticlesProcessedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikiforge_articles_processed_total",
			Help: "The total number of articles successfully processed",
		}, nil),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikiforge_errors_total",
			Help: "The total number of errors encountered",
		}, []string{"type"}), // e.g., 'fetch_failed', 'save_failed'
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikiforge_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wikiforge_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *Metrics) IncArticlesProcessedTotal() {
	m.ArticlesProcessedTotal.WithLabelValues().Inc()
}

func (m *Metrics) IncErrorsTotal(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
