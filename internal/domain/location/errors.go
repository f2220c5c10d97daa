package location

import "errors"

var (
	// ErrNotFound indicates no row for the requested state and city.
	ErrNotFound = errors.New("location not found")
	// ErrAmbiguousMatch indicates more than one row for the requested state and city.
	ErrAmbiguousMatch = errors.New("location matched more than one row")
)
