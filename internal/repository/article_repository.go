// Package repository declares the storage ports used by the catalog use cases.
package repository

import "magazine-catalog/internal/domain/entity"

// ArticleRegistry holds every registered article in insertion order together
// with the authors and magazines created through it. All relationship views
// are recomputed from the registered articles on each call and compare
// entities by pointer identity.
//
// Views documented as returning nil for "none" return a nil slice (or nil
// pointer) rather than an empty one.
type ArticleRegistry interface {
	NewAuthor(name string) (*entity.Author, error)
	NewMagazine(name, category string) (*entity.Magazine, error)
	// NewArticle validates and registers a new article. A rejected article is never registered.
	NewArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error)
	// AddArticle registers a new article written by author for magazine.
	AddArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error)

	All() []*entity.Article
	Len() int
	Authors() []*entity.Author
	Magazines() []*entity.Magazine
	Reset()

	AuthorArticles(author *entity.Author) []*entity.Article
	AuthorMagazines(author *entity.Author) []*entity.Magazine
	// TopicAreas returns nil when the author has no articles.
	TopicAreas(author *entity.Author) []string

	MagazineArticles(magazine *entity.Magazine) []*entity.Article
	Contributors(magazine *entity.Magazine) []*entity.Author
	// ArticleTitles returns nil when the magazine has no articles.
	ArticleTitles(magazine *entity.Magazine) []string
	// ContributingAuthors returns nil unless some author has more than two
	// articles in the magazine.
	ContributingAuthors(magazine *entity.Magazine) []*entity.Author
	// TopPublisher returns nil when no article is registered.
	TopPublisher() *entity.Magazine
}
