package fixtures

import (
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// DebugData holds the entities created by SeedDebugData.
//
// Carrie has four articles (three in Vogue, one in The New Yorker), Samantha
// has three in The New Yorker and Charlotte one in House & Garden. The New
// Yorker is therefore the top publisher and Samantha its only contributing
// author; Vogue's contributing author is Carrie.
type DebugData struct {
	Carrie, Samantha, Charlotte *entity.Author
	Vogue, NewYorker, HouseGarden *entity.Magazine
	Articles                      []*entity.Article
}

// SeedDebugData registers the exploration dataset in reg.
func SeedDebugData(reg repository.ArticleRegistry) (*DebugData, error) {
	d := &DebugData{}
	var err error

	authors := []struct {
		dst  **entity.Author
		name string
	}{
		{&d.Carrie, "Carrie Bradshaw"},
		{&d.Samantha, "Samantha Jones"},
		{&d.Charlotte, "Charlotte York"},
	}
	for _, a := range authors {
		if *a.dst, err = reg.NewAuthor(a.name); err != nil {
			return nil, fmt.Errorf("author %q: %w", a.name, err)
		}
	}

	magazines := []struct {
		dst            **entity.Magazine
		name, category string
	}{
		{&d.Vogue, "Vogue", "Fashion"},
		{&d.NewYorker, "The New Yorker", "News"},
		{&d.HouseGarden, "House & Garden", "Home"},
	}
	for _, m := range magazines {
		if *m.dst, err = reg.NewMagazine(m.name, m.category); err != nil {
			return nil, fmt.Errorf("magazine %q: %w", m.name, err)
		}
	}

	articles := []struct {
		author   *entity.Author
		magazine *entity.Magazine
		title    string
	}{
		{d.Carrie, d.Vogue, "The Dress Dilemma"},
		{d.Carrie, d.Vogue, "Shoes and the City"},
		{d.Carrie, d.Vogue, "Finding Mr. Big"},
		{d.Carrie, d.NewYorker, "Coffee Shop Review"},
		{d.Samantha, d.NewYorker, "Dating in NYC: Part 1"},
		{d.Samantha, d.NewYorker, "Dating in NYC: Part 2"},
		{d.Samantha, d.NewYorker, "Dating in NYC: Part 3"},
		{d.Charlotte, d.HouseGarden, "Modern Art Deco"},
	}
	for _, a := range articles {
		article, err := reg.AddArticle(a.author, a.magazine, a.title)
		if err != nil {
			return nil, fmt.Errorf("article %q: %w", a.title, err)
		}
		d.Articles = append(d.Articles, article)
	}

	return d, nil
}
