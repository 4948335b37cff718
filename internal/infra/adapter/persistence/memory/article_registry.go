// Package memory implements the article registry in process memory.
//
// The registry is a plain ordered slice with no locking: callers own
// exclusive access, and tests start from a fresh registry or call Reset.
package memory

import (
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// contributorThreshold is the article count an author must exceed in a
// magazine to be listed as a contributing author.
const contributorThreshold = 2

// ArticleRegistry is the in-memory repository.ArticleRegistry.
type ArticleRegistry struct {
	articles  []*entity.Article
	authors   []*entity.Author
	magazines []*entity.Magazine

	metrics metrics.CatalogMetrics
	logger  *slog.Logger
}

var _ repository.ArticleRegistry = (*ArticleRegistry)(nil)

// Option configures an ArticleRegistry.
type Option func(*ArticleRegistry)

// WithMetrics records registry activity to m.
func WithMetrics(m metrics.CatalogMetrics) Option {
	return func(r *ArticleRegistry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *ArticleRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewArticleRegistry creates an empty registry.
func NewArticleRegistry(opts ...Option) *ArticleRegistry {
	r := &ArticleRegistry{
		metrics: metrics.NewNoOpMetrics(),
		logger:  logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewAuthor creates an author and records it in the registry's directory.
func (r *ArticleRegistry) NewAuthor(name string) (*entity.Author, error) {
	author, err := entity.NewAuthor(name)
	if err != nil {
		r.rejected("author", err)
		return nil, err
	}
	r.authors = append(r.authors, author)
	return author, nil
}

// NewMagazine creates a magazine and records it in the registry's directory.
func (r *ArticleRegistry) NewMagazine(name, category string) (*entity.Magazine, error) {
	magazine, err := entity.NewMagazine(name, category)
	if err != nil {
		r.rejected("magazine", err)
		return nil, err
	}
	r.magazines = append(r.magazines, magazine)
	return magazine, nil
}

// NewArticle validates a new article and appends it to the registry.
func (r *ArticleRegistry) NewArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	article, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		r.rejected("article", err)
		return nil, err
	}

	r.articles = append(r.articles, article)
	r.metrics.RecordArticleRegistered()
	r.metrics.SetArticles(len(r.articles))
	r.logger.Debug("article registered",
		slog.String("article_id", article.ID().String()),
		slog.String("title", title),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.Int("registry_size", len(r.articles)))
	return article, nil
}

// AddArticle registers a new article written by author. The magazine is
// checked first, then the article is built as by NewArticle.
func (r *ArticleRegistry) AddArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	if magazine == nil {
		err := &entity.ValidationError{
			Field:   "magazine",
			Message: "magazine must be an instance of Magazine",
			Kind:    entity.KindType,
		}
		r.rejected("article", err)
		return nil, err
	}
	return r.NewArticle(author, magazine, title)
}

// All returns every registered article in insertion order.
func (r *ArticleRegistry) All() []*entity.Article {
	out := make([]*entity.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// Len returns the number of registered articles.
func (r *ArticleRegistry) Len() int {
	return len(r.articles)
}

// Authors returns the authors created through the registry, oldest first.
func (r *ArticleRegistry) Authors() []*entity.Author {
	out := make([]*entity.Author, len(r.authors))
	copy(out, r.authors)
	return out
}

// Magazines returns the magazines created through the registry, oldest first.
func (r *ArticleRegistry) Magazines() []*entity.Magazine {
	out := make([]*entity.Magazine, len(r.magazines))
	copy(out, r.magazines)
	return out
}

// Reset forgets every article, author and magazine.
func (r *ArticleRegistry) Reset() {
	dropped := len(r.articles)
	r.articles = nil
	r.authors = nil
	r.magazines = nil

	r.metrics.RecordReset()
	r.metrics.SetArticles(0)
	r.logger.Debug("registry reset", slog.Int("articles_dropped", dropped))
}

func (r *ArticleRegistry) rejected(kind string, err error) {
	r.metrics.RecordValidationFailure(kind, entity.KindOf(err).String())
	r.logger.Debug("entity rejected",
		slog.String("entity", kind),
		slog.Any("error", err))
}
