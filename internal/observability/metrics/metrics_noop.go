package metrics

// NoOpMetrics implements the CatalogMetrics interface with no-op implementations.
// It is the registry default when no metrics are configured.
type NoOpMetrics struct{}

// NewNoOpMetrics creates a new NoOpMetrics instance.
func NewNoOpMetrics() *NoOpMetrics {
	return &NoOpMetrics{}
}

// RecordArticleRegistered is a no-op implementation.
func (m *NoOpMetrics) RecordArticleRegistered() {}

// RecordValidationFailure is a no-op implementation.
func (m *NoOpMetrics) RecordValidationFailure(entity, kind string) {}

// RecordQuery is a no-op implementation.
func (m *NoOpMetrics) RecordQuery(view string) {}

// RecordReset is a no-op implementation.
func (m *NoOpMetrics) RecordReset() {}

// SetArticles is a no-op implementation.
func (m *NoOpMetrics) SetArticles(count int) {}
