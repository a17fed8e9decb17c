package core

import (
	"fmt"
	"sync/atomic"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

var nextGridID atomic.Uint64

// Grid is the occupancy matrix for one covering simulation: a H x W grid of
// cell owners stored in row-major order. A cell value of 0 means uncovered;
// a positive value is the rank of the tower that covers it.
//
// Each Grid carries a process-unique identity so that candidates can be
// validated against the grid they were created for without holding a
// reference to it.
type Grid struct {
	w, h   int
	cells  []int
	towers []Tower
	id     uint64
}

// New allocates an empty grid with the given dimensions.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidBounds, height, width)
	}
	return &Grid{
		w:     width,
		h:     height,
		cells: make([]int, width*height),
		id:    nextGridID.Add(1),
	}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice of cell owners. Callers must treat it as
// read-only; it is invalidated by Reset.
func (g *Grid) Cells() []int { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At returns the owner rank of cell (x, y), 0 if uncovered.
func (g *Grid) At(x, y int) int { return g.cells[y*g.w+x] }

// NumTowers returns the number of committed towers.
func (g *Grid) NumTowers() int { return len(g.towers) }

// Towers returns the committed towers in rank order. The slice is shared;
// callers must not modify it.
func (g *Grid) Towers() []Tower { return g.towers }

// Reset clears all coverage and forgets committed towers, keeping the backing
// allocation for reuse across trials.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
	g.towers = g.towers[:0]
}

// FullyCovered reports whether every cell has an owner.
func (g *Grid) FullyCovered() bool {
	for _, c := range g.cells {
		if c == 0 {
			return false
		}
	}
	return true
}

// RegionCovered reports whether every cell within bounds has an owner.
// Bounds are assumed valid for this grid.
func (g *Grid) RegionCovered(bounds Rect) bool {
	for y := bounds.Y1; y < bounds.Y2; y++ {
		row := g.cells[y*g.w : y*g.w+g.w]
		for x := bounds.X1; x < bounds.X2; x++ {
			if row[x] == 0 {
				return false
			}
		}
	}
	return true
}

// NewCandidate validates the coordinates against the grid extents and returns
// a candidate bound to this grid.
func (g *Grid) NewCandidate(x1, x2, y1, y2 int) (*Candidate, error) {
	if !(0 <= x1 && x1 < x2 && x2 <= g.w) {
		return nil, fmt.Errorf("%w: x range [%d,%d) outside [0,%d]", ErrInvalidBounds, x1, x2, g.w)
	}
	if !(0 <= y1 && y1 < y2 && y2 <= g.h) {
		return nil, fmt.Errorf("%w: y range [%d,%d) outside [0,%d]", ErrInvalidBounds, y1, y2, g.h)
	}
	return &Candidate{Rect: Rect{X1: x1, X2: x2, Y1: y1, Y2: y2}, gridID: g.id}, nil
}

// Commit freezes the candidate into a Tower with the next sequential rank and
// stamps that rank onto every cell in its bounds. The grid is left unmodified
// on failure: a candidate made for another grid, with bounds outside the grid,
// or overlapping existing coverage is rejected.
func (g *Grid) Commit(c *Candidate) (Tower, error) {
	if !c.For(g) {
		return Tower{}, fmt.Errorf("%w: candidate %s", ErrGridMismatch, c.Rect)
	}
	full := Rect{X1: 0, X2: g.w, Y1: 0, Y2: g.h}
	if c.Width() <= 0 || c.Height() <= 0 || !full.Contains(c.Rect) {
		return Tower{}, fmt.Errorf("%w: candidate %s outside grid %dx%d", ErrInvalidBounds, c.Rect, g.h, g.w)
	}
	for y := c.Y1; y < c.Y2; y++ {
		for x := c.X1; x < c.X2; x++ {
			if g.cells[y*g.w+x] != 0 {
				return Tower{}, fmt.Errorf("%w: candidate %s at cell (%d,%d) owned by tower %d",
					ErrOverlap, c.Rect, x, y, g.cells[y*g.w+x])
			}
		}
	}

	t := Tower{Rank: len(g.towers) + 1, Bounds: c.Rect}
	for y := t.Bounds.Y1; y < t.Bounds.Y2; y++ {
		for x := t.Bounds.X1; x < t.Bounds.X2; x++ {
			g.cells[y*g.w+x] = t.Rank
		}
	}
	g.towers = append(g.towers, t)
	return t, nil
}
