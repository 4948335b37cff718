// Package entity defines the core domain entities and validation logic for the catalog.
// It contains Author, Magazine and Article, along with their validation rules
// and the error kinds reported when a rule is broken.
package entity

import "github.com/google/uuid"

// Article links one Author to one Magazine under a title.
// The title is fixed at construction; author and magazine may be reassigned.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an Article without registering it anywhere.
// A nil author or magazine is a type error; a title outside
// [MinTitleLength, MaxTitleLength] runes is a value error.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, typeError("author", "author must be an instance of Author")
	}
	if magazine == nil {
		return nil, typeError("magazine", "magazine must be an instance of Magazine")
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		id:       uuid.New(),
		title:    title,
		author:   author,
		magazine: magazine,
	}, nil
}

// ID returns the article's generated identifier.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's current author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the article's current magazine.
func (a *Article) Magazine() *Magazine { return a.magazine }

// SetTitle always fails: a title cannot be changed after construction.
func (a *Article) SetTitle(string) error {
	return immutableError("title", "title cannot be changed after the article is instantiated")
}

// SetAuthor reassigns the article to another author.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return typeError("author", "author must be an instance of Author")
	}
	a.author = author
	return nil
}

// SetMagazine moves the article to another magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if magazine == nil {
		return typeError("magazine", "magazine must be an instance of Magazine")
	}
	a.magazine = magazine
	return nil
}
