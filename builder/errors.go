package builder

import "errors"

var (
	// ErrTooFewVertices indicates a fixture parameter below the minimum
	// the topology is defined for.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrConstructFailed indicates an invalid constructor composition.
	ErrConstructFailed = errors.New("builder: construction failed")
)
