// Package catalog provides the use cases over the article registry: seeding
// it from a dataset, looking entities up by name and building the author,
// magazine and overview reports shown by the CLI.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrAuthorNotFound indicates that no author with the requested name has
	// been created in the registry.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that no magazine with the requested name
	// has been created in the registry.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrInvalidName indicates that an empty name was given for a lookup.
	ErrInvalidName = errors.New("invalid name")
)
