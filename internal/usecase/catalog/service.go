package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
	"magazine-catalog/internal/seed"
)

// Service provides catalog use cases.
// It owns no state of its own; every answer is read from the registry.
type Service struct {
	repo   repository.ArticleRegistry
	logger *slog.Logger
}

// SeedResult counts the entities created by Seed.
type SeedResult struct {
	Authors   int `json:"authors"`
	Magazines int `json:"magazines"`
	Articles  int `json:"articles"`
}

// AuthorReport summarizes one author's work.
type AuthorReport struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Articles   []string  `json:"articles"`
	Magazines  []string  `json:"magazines"`
	TopicAreas []string  `json:"topic_areas"`
}

// MagazineReport summarizes one magazine's content and contributors.
type MagazineReport struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Articles            []string  `json:"articles"`
	Contributors        []string  `json:"contributors"`
	ContributingAuthors []string  `json:"contributing_authors"`
}

// Overview counts the registry contents. TopPublisher is empty when no
// article is registered.
type Overview struct {
	Authors      int    `json:"authors"`
	Magazines    int    `json:"magazines"`
	Articles     int    `json:"articles"`
	TopPublisher string `json:"top_publisher,omitempty"`
}

// NewService creates a Service over repo. A nil logger falls back to slog.Default().
func NewService(repo repository.ArticleRegistry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Seed creates the authors, magazines and articles of ds in order.
// Article references resolve by name against every author and magazine in
// the registry; when several share a name the one created first is used.
// Seeding stops at the first failing record, leaving the records before it
// registered.
func (s *Service) Seed(ctx context.Context, ds seed.Dataset) (SeedResult, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.Seed",
		attribute.Int("dataset.authors", len(ds.Authors)),
		attribute.Int("dataset.magazines", len(ds.Magazines)),
		attribute.Int("dataset.articles", len(ds.Articles)))
	defer span.End()

	result, err := s.seed(ds)
	if err != nil {
		tracing.RecordError(span, err)
		s.logger.WarnContext(ctx, "seeding stopped",
			slog.Int("authors", result.Authors),
			slog.Int("magazines", result.Magazines),
			slog.Int("articles", result.Articles),
			slog.Any("error", err))
		return result, err
	}

	s.logger.InfoContext(ctx, "dataset seeded",
		slog.Int("authors", result.Authors),
		slog.Int("magazines", result.Magazines),
		slog.Int("articles", result.Articles))
	return result, nil
}

func (s *Service) seed(ds seed.Dataset) (SeedResult, error) {
	var result SeedResult

	for i, a := range ds.Authors {
		if _, err := s.repo.NewAuthor(a.Name); err != nil {
			return result, fmt.Errorf("author %d: %w", i, err)
		}
		result.Authors++
	}

	for i, m := range ds.Magazines {
		if _, err := s.repo.NewMagazine(m.Name, m.Category); err != nil {
			return result, fmt.Errorf("magazine %d (%q): %w", i, m.Name, err)
		}
		result.Magazines++
	}

	authors := authorsByName(s.repo.Authors())
	magazines := magazinesByName(s.repo.Magazines())
	for i, a := range ds.Articles {
		author, ok := authors[a.Author]
		if !ok {
			return result, fmt.Errorf("article %d: %w: %q", i, ErrAuthorNotFound, a.Author)
		}
		magazine, ok := magazines[a.Magazine]
		if !ok {
			return result, fmt.Errorf("article %d: %w: %q", i, ErrMagazineNotFound, a.Magazine)
		}
		if _, err := s.repo.AddArticle(author, magazine, a.Title); err != nil {
			return result, fmt.Errorf("article %d (%q): %w", i, a.Title, err)
		}
		result.Articles++
	}

	return result, nil
}

// FindAuthor returns the first author created with name.
// Returns ErrInvalidName if name is blank.
// Returns ErrAuthorNotFound if no such author exists.
func (s *Service) FindAuthor(ctx context.Context, name string) (*entity.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	author, ok := authorsByName(s.repo.Authors())[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAuthorNotFound, name)
	}
	return author, nil
}

// FindMagazine returns the first magazine created with name.
// Returns ErrInvalidName if name is blank.
// Returns ErrMagazineNotFound if no such magazine exists.
func (s *Service) FindMagazine(ctx context.Context, name string) (*entity.Magazine, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	magazine, ok := magazinesByName(s.repo.Magazines())[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMagazineNotFound, name)
	}
	return magazine, nil
}

// AuthorReport builds the report for the author named name.
func (s *Service) AuthorReport(ctx context.Context, name string) (*AuthorReport, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.AuthorReport", attribute.String("author.name", name))
	defer span.End()

	author, err := s.FindAuthor(ctx, name)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("author report: %w", err)
	}

	articles := s.repo.AuthorArticles(author)
	report := &AuthorReport{
		ID:         author.ID(),
		Name:       author.Name(),
		Articles:   articleTitles(articles),
		Magazines:  magazineNames(s.repo.AuthorMagazines(author)),
		TopicAreas: s.repo.TopicAreas(author),
	}
	span.SetAttributes(attribute.Int("author.articles", len(articles)))
	s.logger.DebugContext(ctx, "author report built",
		slog.String("author", name),
		slog.Int("articles", len(articles)))
	return report, nil
}

// MagazineReport builds the report for the magazine named name.
func (s *Service) MagazineReport(ctx context.Context, name string) (*MagazineReport, error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.MagazineReport", attribute.String("magazine.name", name))
	defer span.End()

	magazine, err := s.FindMagazine(ctx, name)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("magazine report: %w", err)
	}

	report := &MagazineReport{
		ID:                  magazine.ID(),
		Name:                magazine.Name(),
		Category:            magazine.Category(),
		Articles:            s.repo.ArticleTitles(magazine),
		Contributors:        authorNames(s.repo.Contributors(magazine)),
		ContributingAuthors: authorNames(s.repo.ContributingAuthors(magazine)),
	}
	span.SetAttributes(attribute.Int("magazine.articles", len(report.Articles)))
	s.logger.DebugContext(ctx, "magazine report built",
		slog.String("magazine", name),
		slog.Int("articles", len(report.Articles)))
	return report, nil
}

// Overview counts the registry contents and names the top publisher.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	_, span := tracing.StartSpan(ctx, "catalog.Overview")
	defer span.End()

	overview := &Overview{
		Authors:   len(s.repo.Authors()),
		Magazines: len(s.repo.Magazines()),
		Articles:  s.repo.Len(),
	}
	if top := s.repo.TopPublisher(); top != nil {
		overview.TopPublisher = top.Name()
	}
	span.SetAttributes(
		attribute.Int("registry.articles", overview.Articles),
		attribute.String("registry.top_publisher", overview.TopPublisher))
	return overview, nil
}

func authorsByName(authors []*entity.Author) map[string]*entity.Author {
	byName := make(map[string]*entity.Author, len(authors))
	for _, a := range authors {
		if _, ok := byName[a.Name()]; !ok {
			byName[a.Name()] = a
		}
	}
	return byName
}

func magazinesByName(magazines []*entity.Magazine) map[string]*entity.Magazine {
	byName := make(map[string]*entity.Magazine, len(magazines))
	for _, m := range magazines {
		if _, ok := byName[m.Name()]; !ok {
			byName[m.Name()] = m
		}
	}
	return byName
}

func articleTitles(articles []*entity.Article) []string {
	var titles []string
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles
}

func magazineNames(magazines []*entity.Magazine) []string {
	var names []string
	for _, m := range magazines {
		names = append(names, m.Name())
	}
	return names
}

func authorNames(authors []*entity.Author) []string {
	var names []string
	for _, a := range authors {
		names = append(names, a.Name())
	}
	return names
}
