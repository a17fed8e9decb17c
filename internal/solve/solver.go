// Package solve runs one covering trial: random candidate towers are drawn,
// trimmed to the largest empty sub-rectangle available, and committed until
// the grid is fully covered.
package solve

import (
	"fmt"

	"towercover/internal/core"
	"towercover/internal/trim"
	"towercover/pkg/rng"
)

// Solver owns one occupancy grid and one random source for the duration of a
// trial. Solvers are not safe for concurrent use; parallel trials each get
// their own Solver with an independently seeded RNG.
type Solver struct {
	grid *core.Grid
	rng  *rng.RNG
}

// New creates a solver for a height x width grid, drawing from a generator
// seeded with seed.
func New(height, width int, seed int64) (*Solver, error) {
	g, err := core.New(height, width)
	if err != nil {
		return nil, err
	}
	return &Solver{grid: g, rng: rng.New(seed)}, nil
}

// Grid exposes the underlying occupancy grid for read-only inspection.
func (s *Solver) Grid() *core.Grid { return s.grid }

// Reset clears the grid for a fresh trial, reusing the allocation.
func (s *Solver) Reset() { s.grid.Reset() }

// RandomCandidate draws a candidate with the two-step distribution the
// experiment is defined over: per axis, the size is uniform in [1, dim] and
// then the origin is uniform in [0, dim-size]. Size and position are each
// marginally uniform but not jointly uniform over all rectangles; that bias
// is part of the experiment, not an accident.
func (s *Solver) RandomCandidate() *Candidate {
	size := s.grid.Size()

	w := s.rng.Between(1, size.W)
	x1 := s.rng.Between(0, size.W-w)

	h := s.rng.Between(1, size.H)
	y1 := s.rng.Between(0, size.H-h)

	c, err := s.grid.NewCandidate(x1, x1+w, y1, y1+h)
	if err != nil {
		// The draws above cannot leave the grid extents.
		panic(fmt.Sprintf("solve: random candidate out of bounds: %v", err))
	}
	return c
}

// Candidate aliases the core type so callers stepping the solver manually do
// not need to import core as well.
type Candidate = core.Candidate

// ValidCandidate resamples until the candidate covers at least one uncovered
// cell. It fails with core.ErrExhausted when the grid has no uncovered cell
// left, rather than looping forever.
func (s *Solver) ValidCandidate() (*Candidate, error) {
	if s.grid.FullyCovered() {
		return nil, fmt.Errorf("solve: cannot generate candidate: %w", core.ErrExhausted)
	}
	c := s.RandomCandidate()
	for s.grid.RegionCovered(c.Rect) {
		c = s.RandomCandidate()
	}
	return c, nil
}

// PlaceOne performs a single placement: generate a valid candidate, trim it,
// and commit it. It returns the committed tower. Failures from trimming or
// committing after a successful generation indicate a broken invariant
// upstream and are returned wrapped, never retried.
func (s *Solver) PlaceOne() (core.Tower, error) {
	c, err := s.ValidCandidate()
	if err != nil {
		return core.Tower{}, err
	}
	if err := trim.Shrink(s.grid, c); err != nil {
		return core.Tower{}, fmt.Errorf("solve: trim after accepted candidate: %w", err)
	}
	t, err := s.grid.Commit(c)
	if err != nil {
		return core.Tower{}, fmt.Errorf("solve: commit of trimmed candidate: %w", err)
	}
	return t, nil
}

// RunTrial resets the grid and places towers until it is fully covered,
// returning the number of towers used. Each committed tower covers at least
// one previously uncovered cell, so the loop always terminates within
// height x width placements.
func (s *Solver) RunTrial() (int, error) {
	s.grid.Reset()
	for !s.grid.FullyCovered() {
		if _, err := s.PlaceOne(); err != nil {
			return 0, err
		}
	}
	return s.grid.NumTowers(), nil
}
