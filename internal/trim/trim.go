// Package trim shrinks a candidate rectangle to the largest fully uncovered
// sub-rectangle within its bounds, using the histogram-stack maximal
// rectangle search. Each row costs O(candidate width) amortized, so a full
// trim is O(width x height) of the candidate.
package trim

import (
	"fmt"

	"towercover/internal/core"
)

// opening marks a column where the open run grew taller. below is the height
// that was open just before this opening started; it becomes the open height
// again once the opening is closed.
type opening struct {
	col   int
	below int
}

// maxRect accumulates the largest all-uncovered rectangle seen so far, in
// coordinates local to the scanned region. Ties keep the first rectangle
// encountered in scan order (row-major, left to right).
type maxRect struct {
	area int
	rect core.Rect
}

func (m *maxRect) consider(x1, x2, row, height int) {
	area := height * (x2 - x1)
	if area > m.area {
		m.area = area
		m.rect = core.Rect{X1: x1, X2: x2, Y1: row - height + 1, Y2: row + 1}
	}
}

// scanRow folds one histogram row into acc. heights[x] is the number of
// consecutive uncovered rows ending at row in column x. A monotonic stack of
// openings tracks still-open rectangles of increasing height; a virtual
// zero-height column past the end closes everything before the next row.
//
// The subtle step is the reopen after popping: when the current height falls
// between two stacked heights, the run that started at the popped opening's
// column is still alive at the lower current height, so an opening is
// re-pushed at that column carrying the height that was active before the
// taller opening began. No re-push happens when the current height exactly
// equals the height closed down to, because that run is already represented.
func scanRow(heights []int, row int, acc *maxRect) {
	var stack []opening
	open := 0
	for x := 0; x <= len(heights); x++ {
		h := 0
		if x < len(heights) {
			h = heights[x]
		}
		if h == open {
			continue
		}
		if h > open {
			stack = append(stack, opening{col: x, below: open})
			open = h
			continue
		}
		start := x
		for open > h {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			acc.consider(top.col, x, row, open)
			start = top.col
			open = top.below
		}
		if open < h {
			stack = append(stack, opening{col: start, below: open})
			open = h
		}
	}
}

// Shrink tightens the candidate's bounds to the maximum-area fully uncovered
// sub-rectangle inside them. It fails with core.ErrFullyCovered when the
// region holds no uncovered cell; under the solver's rejection sampling that
// is an internal-consistency violation, not an expected outcome.
func Shrink(g *core.Grid, c *core.Candidate) error {
	width := c.Width()
	cache := make([]int, width)
	var acc maxRect

	cells := g.Cells()
	stride := g.Size().W
	for y := c.Y1; y < c.Y2; y++ {
		row := cells[y*stride : y*stride+stride]
		for i := 0; i < width; i++ {
			if row[c.X1+i] != 0 {
				cache[i] = 0
			} else {
				cache[i]++
			}
		}
		scanRow(cache, y-c.Y1, &acc)
	}

	if acc.area == 0 {
		return fmt.Errorf("%w: candidate %s", core.ErrFullyCovered, c.Rect)
	}

	trimmed := core.Rect{
		X1: acc.rect.X1 + c.X1,
		X2: acc.rect.X2 + c.X1,
		Y1: acc.rect.Y1 + c.Y1,
		Y2: acc.rect.Y2 + c.Y1,
	}
	if trimmed.Width() <= 0 || trimmed.Height() <= 0 || !c.Rect.Contains(trimmed) {
		return fmt.Errorf("%w: trimmed %s escapes candidate %s", core.ErrInvalidBounds, trimmed, c.Rect)
	}
	c.Rect = trimmed
	return nil
}
