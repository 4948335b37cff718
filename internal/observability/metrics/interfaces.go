package metrics

// CatalogMetrics defines the interface for recording article registry metrics.
//
// Implementations can use Prometheus or discard everything.
type CatalogMetrics interface {
	// RecordArticleRegistered records an article appended to the registry.
	RecordArticleRegistered()

	// RecordValidationFailure records a rejected entity operation.
	//
	// Parameters:
	//   - entity: "author", "magazine" or "article"
	//   - kind: error kind name ("type", "value", "immutable")
	RecordValidationFailure(entity, kind string)

	// RecordQuery records one derived view scan, e.g. "author_articles".
	RecordQuery(view string)

	// RecordReset records an explicit registry reset.
	RecordReset()

	// SetArticles sets the current number of registered articles.
	SetArticles(count int)
}
