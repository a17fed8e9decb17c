//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the trial state the overlay reports.
type Status struct {
	Towers   int
	Covered  int
	Cells    int
	Done     bool
	Paused   bool
	LastRank int
}

// Overlay draws a small trial-status readout on top of the grid view.
// The H key toggles it.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update handles the overlay's key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	if !o.visible {
		return
	}
	pct := 0.0
	if st.Cells > 0 {
		pct = 100 * float64(st.Covered) / float64(st.Cells)
	}
	line := fmt.Sprintf("towers %d  coverage %.1f%%", st.Towers, pct)
	switch {
	case st.Done:
		line += "  [done]"
	case st.Paused:
		line += "  [paused]"
	}
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 5, 14, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
