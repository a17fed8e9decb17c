//go:build !ebiten

package ui

// Status is the trial state the overlay reports.
type Status struct {
	Towers   int
	Covered  int
	Cells    int
	Done     bool
	Paused   bool
	LastRank int
}

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay() *Overlay { return nil }

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, Status) {}
