package core

import "errors"

var (
	// ErrInsufficientStars is returned when a field has fewer stars than a quad needs.
	ErrInsufficientStars = errors.New("insufficient stars")

	// ErrInvalidCode is returned when a code does not have the dimensionality an index expects.
	ErrInvalidCode = errors.New("invalid code")

	// ErrInvalidConfig is returned for contract violations detected before a solve starts.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrEmptyIndex is returned when querying an index that holds no data.
	ErrEmptyIndex = errors.New("index is empty")

	// ErrStarNotFound is returned when a reference star id is out of range.
	ErrStarNotFound = errors.New("star not found")

	// ErrDegenerate is returned when a geometric construction has no unique solution.
	ErrDegenerate = errors.New("degenerate geometry")
)
