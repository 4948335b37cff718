// Package metrics provides Prometheus metrics for the article registry.
//
// The registry records:
//   - Articles registered
//   - Entity validation failures by entity and error kind
//   - Derived view scans by view name
//   - Registry resets and the current article count
//
// Metrics live in a custom registry owned by each PrometheusMetrics value, so
// tests and CLI runs never share counters. NoOpMetrics disables collection.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	m := metrics.NewPrometheusMetrics()
//	reg := memory.NewArticleRegistry(memory.WithMetrics(m))
//	// ... use reg ...
//	families, _ := m.Registry().Gather()
package metrics
