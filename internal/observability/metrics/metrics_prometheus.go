package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements the CatalogMetrics interface using Prometheus.
//
// All metrics use a custom registry for testability and isolation.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	// articlesRegistered counts articles appended to the registry.
	articlesRegistered prometheus.Counter

	// validationFailures counts rejected entity operations.
	// Labels:
	//   - entity: "author", "magazine" or "article"
	//   - kind: "type", "value" or "immutable"
	validationFailures *prometheus.CounterVec

	// queries counts derived view scans.
	// Labels:
	//   - view: e.g. "author_articles", "top_publisher"
	queries *prometheus.CounterVec

	resets prometheus.Counter

	// articles tracks the current registry size.
	articles prometheus.Gauge
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance with a custom registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	articlesRegistered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_articles_registered_total",
		Help: "Total articles appended to the registry",
	})

	validationFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total rejected entity operations by entity and error kind",
		},
		[]string{"entity", "kind"},
	)

	queries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_registry_queries_total",
			Help: "Total derived view scans by view",
		},
		[]string{"view"},
	)

	resets := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_registry_resets_total",
		Help: "Total explicit registry resets",
	})

	articles := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_registry_articles",
		Help: "Current number of registered articles",
	})

	registry.MustRegister(
		articlesRegistered,
		validationFailures,
		queries,
		resets,
		articles,
	)

	return &PrometheusMetrics{
		registry:           registry,
		articlesRegistered: articlesRegistered,
		validationFailures: validationFailures,
		queries:            queries,
		resets:             resets,
		articles:           articles,
	}
}

// Registry returns the custom Prometheus registry holding the catalog metrics.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordArticleRegistered increments the registered articles counter.
func (m *PrometheusMetrics) RecordArticleRegistered() {
	m.articlesRegistered.Inc()
}

// RecordValidationFailure increments the failure counter for entity and kind.
func (m *PrometheusMetrics) RecordValidationFailure(entity, kind string) {
	m.validationFailures.WithLabelValues(entity, kind).Inc()
}

// RecordQuery increments the scan counter for view.
func (m *PrometheusMetrics) RecordQuery(view string) {
	m.queries.WithLabelValues(view).Inc()
}

// RecordReset increments the reset counter.
func (m *PrometheusMetrics) RecordReset() {
	m.resets.Inc()
}

// SetArticles sets the registry size gauge.
func (m *PrometheusMetrics) SetArticles(count int) {
	m.articles.Set(float64(count))
}
