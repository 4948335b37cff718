package memory

import "magazine-catalog/internal/domain/entity"

// AuthorArticles returns the articles currently attributed to author.
func (r *ArticleRegistry) AuthorArticles(author *entity.Author) []*entity.Article {
	r.metrics.RecordQuery("author_articles")
	return r.filter(func(a *entity.Article) bool { return a.Author() == author })
}

// AuthorMagazines returns the distinct magazines author has written for,
// in the order they first appear in the registry.
func (r *ArticleRegistry) AuthorMagazines(author *entity.Author) []*entity.Magazine {
	r.metrics.RecordQuery("author_magazines")
	return distinctMagazines(r.filter(func(a *entity.Article) bool { return a.Author() == author }))
}

// TopicAreas returns the distinct categories of the magazines author has
// written for, or nil when author has no articles. Two magazines sharing a
// category contribute it once.
func (r *ArticleRegistry) TopicAreas(author *entity.Author) []string {
	r.metrics.RecordQuery("topic_areas")
	articles := r.filter(func(a *entity.Article) bool { return a.Author() == author })
	if len(articles) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, m := range distinctMagazines(articles) {
		if _, ok := seen[m.Category()]; ok {
			continue
		}
		seen[m.Category()] = struct{}{}
		categories = append(categories, m.Category())
	}
	return categories
}

// MagazineArticles returns the articles currently published in magazine.
func (r *ArticleRegistry) MagazineArticles(magazine *entity.Magazine) []*entity.Article {
	r.metrics.RecordQuery("magazine_articles")
	return r.filter(func(a *entity.Article) bool { return a.Magazine() == magazine })
}

// Contributors returns the distinct authors published in magazine, in the
// order they first appear in the registry.
func (r *ArticleRegistry) Contributors(magazine *entity.Magazine) []*entity.Author {
	r.metrics.RecordQuery("contributors")
	authors, _ := countAuthors(r.filter(func(a *entity.Article) bool { return a.Magazine() == magazine }))
	return authors
}

// ArticleTitles returns the titles published in magazine, or nil when it has none.
func (r *ArticleRegistry) ArticleTitles(magazine *entity.Magazine) []string {
	r.metrics.RecordQuery("article_titles")
	articles := r.filter(func(a *entity.Article) bool { return a.Magazine() == magazine })
	if len(articles) == 0 {
		return nil
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles
}

// ContributingAuthors returns the authors with more than contributorThreshold
// articles in magazine, in first-seen order, or nil when there are none.
func (r *ArticleRegistry) ContributingAuthors(magazine *entity.Magazine) []*entity.Author {
	r.metrics.RecordQuery("contributing_authors")
	authors, counts := countAuthors(r.filter(func(a *entity.Article) bool { return a.Magazine() == magazine }))

	var contributing []*entity.Author
	for _, author := range authors {
		if counts[author] > contributorThreshold {
			contributing = append(contributing, author)
		}
	}
	return contributing
}

// TopPublisher returns the magazine with the most registered articles, or nil
// when the registry is empty. On a tie the magazine encountered first wins.
func (r *ArticleRegistry) TopPublisher() *entity.Magazine {
	r.metrics.RecordQuery("top_publisher")
	if len(r.articles) == 0 {
		return nil
	}

	counts := make(map[*entity.Magazine]int)
	var order []*entity.Magazine
	for _, a := range r.articles {
		m := a.Magazine()
		if _, ok := counts[m]; !ok {
			order = append(order, m)
		}
		counts[m]++
	}

	top := order[0]
	for _, m := range order[1:] {
		if counts[m] > counts[top] {
			top = m
		}
	}
	return top
}

func (r *ArticleRegistry) filter(keep func(*entity.Article) bool) []*entity.Article {
	var out []*entity.Article
	for _, a := range r.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func distinctMagazines(articles []*entity.Article) []*entity.Magazine {
	seen := make(map[*entity.Magazine]struct{})
	var out []*entity.Magazine
	for _, a := range articles {
		if _, ok := seen[a.Magazine()]; ok {
			continue
		}
		seen[a.Magazine()] = struct{}{}
		out = append(out, a.Magazine())
	}
	return out
}

// countAuthors returns the distinct authors of articles in first-seen order
// and the number of articles each wrote.
func countAuthors(articles []*entity.Article) ([]*entity.Author, map[*entity.Author]int) {
	counts := make(map[*entity.Author]int)
	var order []*entity.Author
	for _, a := range articles {
		if _, ok := counts[a.Author()]; !ok {
			order = append(order, a.Author())
		}
		counts[a.Author()]++
	}
	return order, counts
}
