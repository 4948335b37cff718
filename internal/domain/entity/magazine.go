package entity

import "github.com/google/uuid"

// Magazine publishes articles under a category. Both name and category may be
// changed after construction; every assignment is validated again.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
}

// NewMagazine creates a Magazine. The name is checked before the category.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{id: uuid.New(), name: name, category: category}, nil
}

// ID returns the magazine's generated identifier.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's current category.
func (m *Magazine) Category() string { return m.category }

// SetName renames the magazine. An invalid name leaves the old one in place.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory changes the magazine's category. An empty category leaves the
// old one in place.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

func (m *Magazine) String() string { return m.name }
