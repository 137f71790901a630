package repository

import "errors"

var (
	// ErrNotFound is returned when a document cannot be found.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("document already exists")

	// ErrVersionConflict is returned when a versioned write lost a race
	// against another writer of the same document.
	ErrVersionConflict = errors.New("document was modified concurrently")
)
