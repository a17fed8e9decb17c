package core

import "fmt"

// Rect is an axis-aligned rectangle over grid cells, stored as the half-open
// interval [X1,X2) x [Y1,Y2).
type Rect struct {
	X1, X2 int
	Y1, Y2 int
}

// Width returns the number of columns the rectangle spans.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns the number of rows the rectangle spans.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Area returns the number of cells the rectangle covers.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return r.X1 <= other.X1 && other.X2 <= r.X2 &&
		r.Y1 <= other.Y1 && other.Y2 <= r.Y2
}

// Overlaps reports whether the two rectangles share at least one cell.
func (r Rect) Overlaps(other Rect) bool {
	return r.X1 < other.X2 && other.X1 < r.X2 &&
		r.Y1 < other.Y2 && other.Y1 < r.Y2
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.X1, r.X2, r.Y1, r.Y2)
}

// Candidate is a proposed tower bound to the grid it was created for. Its
// bounds may be tightened (never widened) until it is committed; commit turns
// it into an immutable Tower.
type Candidate struct {
	Rect
	gridID uint64
}

// For reports whether the candidate was created for g.
func (c *Candidate) For(g *Grid) bool { return c.gridID == g.id }

// Tower is a committed, immutable rectangle. Rank is the 1-based commit order
// and doubles as the cell marker value in the grid.
type Tower struct {
	Rank   int
	Bounds Rect
}

func (t Tower) String() string {
	return fmt.Sprintf("tower %d: %s", t.Rank, t.Bounds)
}
