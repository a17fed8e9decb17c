package core

import "testing"

func TestRectGeometry(t *testing.T) {
	r := Rect{X1: 1, X2: 4, Y1: 0, Y2: 2}
	if r.Width() != 3 || r.Height() != 2 || r.Area() != 6 {
		t.Fatalf("got w=%d h=%d area=%d", r.Width(), r.Height(), r.Area())
	}
	if r.String() != "[1,4)x[0,2)" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X1: 0, X2: 4, Y1: 0, Y2: 4}
	cases := []struct {
		inner Rect
		want  bool
	}{
		{Rect{0, 4, 0, 4}, true},
		{Rect{1, 3, 1, 3}, true},
		{Rect{0, 5, 0, 4}, false},
		{Rect{-1, 3, 0, 4}, false},
		{Rect{1, 3, 2, 5}, false},
	}
	for _, tc := range cases {
		if got := outer.Contains(tc.inner); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.inner, got, tc.want)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{X1: 1, X2: 3, Y1: 1, Y2: 3}
	cases := []struct {
		other Rect
		want  bool
	}{
		{Rect{2, 4, 2, 4}, true},
		{Rect{0, 2, 0, 2}, true},
		{Rect{3, 5, 1, 3}, false}, // shares an edge, half-open intervals do not overlap
		{Rect{1, 3, 3, 5}, false},
		{Rect{0, 4, 0, 4}, true},
	}
	for _, tc := range cases {
		if got := r.Overlaps(tc.other); got != tc.want {
			t.Errorf("Overlaps(%s) = %v, want %v", tc.other, got, tc.want)
		}
		if got := tc.other.Overlaps(r); got != tc.want {
			t.Errorf("Overlaps is not symmetric for %s", tc.other)
		}
	}
}

func TestTowerString(t *testing.T) {
	tw := Tower{Rank: 3, Bounds: Rect{X1: 0, X2: 2, Y1: 1, Y2: 4}}
	if tw.String() != "tower 3: [0,2)x[1,4)" {
		t.Fatalf("String() = %q", tw.String())
	}
}
