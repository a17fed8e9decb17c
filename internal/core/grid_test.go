package core

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, h, w int) *Grid {
	t.Helper()
	g, err := New(h, w)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", h, w, err)
	}
	return g
}

func mustCandidate(t *testing.T, g *Grid, x1, x2, y1, y2 int) *Candidate {
	t.Helper()
	c, err := g.NewCandidate(x1, x2, y1, y2)
	if err != nil {
		t.Fatalf("NewCandidate(%d,%d,%d,%d): %v", x1, x2, y1, y2, err)
	}
	return c
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidBounds) {
			t.Fatalf("New(%d, %d) = %v, want ErrInvalidBounds", dims[0], dims[1], err)
		}
	}
}

func TestNewCandidateValidation(t *testing.T) {
	g := mustGrid(t, 3, 4)

	cases := []struct {
		name           string
		x1, x2, y1, y2 int
		ok             bool
	}{
		{"full grid", 0, 4, 0, 3, true},
		{"single cell", 2, 3, 1, 2, true},
		{"x2 at width", 3, 4, 0, 1, true},
		{"negative x1", -1, 2, 0, 1, false},
		{"x1 equals x2", 2, 2, 0, 1, false},
		{"x1 above x2", 3, 1, 0, 1, false},
		{"x2 past width", 0, 5, 0, 1, false},
		{"negative y1", 0, 1, -1, 1, false},
		{"y1 equals y2", 0, 1, 2, 2, false},
		{"y2 past height", 0, 1, 0, 4, false},
	}
	for _, tc := range cases {
		_, err := g.NewCandidate(tc.x1, tc.x2, tc.y1, tc.y2)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("%s: got %v, want ErrInvalidBounds", tc.name, err)
		}
	}
}

func TestCommitAssignsSequentialRanks(t *testing.T) {
	g := mustGrid(t, 2, 3)

	rects := [][4]int{
		{0, 1, 0, 2},
		{1, 3, 0, 1},
		{1, 3, 1, 2},
	}
	for i, r := range rects {
		tower, err := g.Commit(mustCandidate(t, g, r[0], r[1], r[2], r[3]))
		if err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
		if tower.Rank != i+1 {
			t.Fatalf("commit %d assigned rank %d, want %d", i, tower.Rank, i+1)
		}
	}

	if !g.FullyCovered() {
		t.Fatal("grid should be fully covered")
	}
	if g.NumTowers() != 3 {
		t.Fatalf("NumTowers() = %d, want 3", g.NumTowers())
	}
	for i, tower := range g.Towers() {
		if tower.Rank != i+1 {
			t.Fatalf("tower %d has rank %d", i, tower.Rank)
		}
		b := tower.Bounds
		for y := b.Y1; y < b.Y2; y++ {
			for x := b.X1; x < b.X2; x++ {
				if g.At(x, y) != tower.Rank {
					t.Fatalf("cell (%d,%d) = %d, want %d", x, y, g.At(x, y), tower.Rank)
				}
			}
		}
	}
}

func TestCommitOverlapLeavesGridUnmodified(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if _, err := g.Commit(mustCandidate(t, g, 0, 2, 0, 2)); err != nil {
		t.Fatalf("first commit: %v", err)
	}

	before := make([]int, len(g.Cells()))
	copy(before, g.Cells())

	_, err := g.Commit(mustCandidate(t, g, 1, 3, 1, 3))
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("overlapping commit = %v, want ErrOverlap", err)
	}
	if g.NumTowers() != 1 {
		t.Fatalf("NumTowers() = %d after failed commit, want 1", g.NumTowers())
	}
	for i, c := range g.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed from %d to %d on failed commit", i, before[i], c)
		}
	}
}

func TestCommitRejectsForeignCandidate(t *testing.T) {
	a := mustGrid(t, 2, 2)
	b := mustGrid(t, 2, 2)

	c := mustCandidate(t, a, 0, 1, 0, 1)
	if _, err := b.Commit(c); !errors.Is(err, ErrGridMismatch) {
		t.Fatalf("foreign commit = %v, want ErrGridMismatch", err)
	}
	if b.NumTowers() != 0 {
		t.Fatalf("grid b mutated by rejected commit")
	}
}

func TestResetClearsCoverageAndTowers(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if _, err := g.Commit(mustCandidate(t, g, 0, 2, 0, 2)); err != nil {
		t.Fatalf("commit: %v", err)
	}
	g.Reset()

	if g.NumTowers() != 0 {
		t.Fatalf("NumTowers() = %d after Reset, want 0", g.NumTowers())
	}
	if g.FullyCovered() {
		t.Fatal("grid still covered after Reset")
	}
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Reset", i, c)
		}
	}

	// Ranks start over on the reused grid.
	tower, err := g.Commit(mustCandidate(t, g, 0, 1, 0, 1))
	if err != nil {
		t.Fatalf("commit after Reset: %v", err)
	}
	if tower.Rank != 1 {
		t.Fatalf("rank after Reset = %d, want 1", tower.Rank)
	}
}

func TestRegionCovered(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if _, err := g.Commit(mustCandidate(t, g, 0, 2, 0, 3)); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if !g.RegionCovered(Rect{X1: 0, X2: 2, Y1: 0, Y2: 3}) {
		t.Fatal("committed region should report covered")
	}
	if g.RegionCovered(Rect{X1: 0, X2: 3, Y1: 0, Y2: 3}) {
		t.Fatal("grid with an empty column should not report covered")
	}
	if g.RegionCovered(Rect{X1: 2, X2: 3, Y1: 1, Y2: 2}) {
		t.Fatal("uncovered cell should not report covered")
	}
}
