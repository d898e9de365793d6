package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMovieAlreadyExists is returned when creating a movie whose directory
	// already exists under the movies data dir.
	ErrMovieAlreadyExists = errors.New("movie already exists")

	// ErrMovieNotFound is returned when an operation targets a movie whose
	// directory or metadata file does not exist.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrMetadataMissing is returned when a movie directory exists but holds
	// no readable metadata file.
	ErrMetadataMissing = errors.New("movie metadata missing")
)
