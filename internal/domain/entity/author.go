package entity

import "github.com/google/uuid"

// Author is a named writer of articles. The name is fixed at construction.
// Two authors with the same name are still distinct; relationships are
// resolved by pointer identity.
type Author struct {
	id   uuid.UUID
	name string
}

// NewAuthor creates an Author. The name must not be empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: uuid.New(), name: name}, nil
}

// ID returns the author's generated identifier.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// SetName always fails: an author's name cannot be changed after construction.
func (a *Author) SetName(string) error {
	return immutableError("name", "author name cannot be changed after the author is instantiated")
}

func (a *Author) String() string { return a.name }
