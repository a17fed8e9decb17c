package core

import "errors"

// Sentinel errors for the covering engine. Callers match them with errors.Is;
// the concrete messages carry the offending coordinates.
var (
	// ErrInvalidBounds reports degenerate or out-of-range rectangle coordinates.
	ErrInvalidBounds = errors.New("invalid rectangle bounds")

	// ErrGridMismatch reports a candidate applied to a grid it was not created for.
	ErrGridMismatch = errors.New("candidate belongs to a different grid")

	// ErrOverlap reports a commit that would overwrite existing coverage.
	ErrOverlap = errors.New("candidate overlaps existing coverage")

	// ErrExhausted reports candidate generation on a fully covered grid.
	ErrExhausted = errors.New("grid is fully covered")

	// ErrFullyCovered reports a trim attempt on a region with no uncovered cell.
	ErrFullyCovered = errors.New("region is fully covered, cannot trim")
)
