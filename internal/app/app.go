//go:build ebiten

package app

import (
	"time"

	"towercover/internal/render"
	"towercover/internal/solve"
	"towercover/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a covering solver to the ebiten.Game interface. Each tick
// places one tower until the grid is fully covered.
type Game struct {
	solver  *solve.Solver
	painter *render.GridPainter
	overlay *ui.Overlay

	scale    int
	seed     int64
	paused   bool
	tickOnce bool
	done     bool
	lastRank int
	err      error
}

// New constructs a Game for the provided solver.
func New(s *solve.Solver, scale int, seed int64) *Game {
	size := s.Grid().Size()
	return &Game{
		solver:  s,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset starts a fresh trial on the same grid.
func (g *Game) Reset() {
	g.solver.Reset()
	g.done = false
	g.lastRank = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the trial by one placement.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		// Reseed with a fresh solver of the same dimensions.
		s, err := solve.New(g.solver.Grid().Size().H, g.solver.Grid().Size().W, time.Now().UnixNano())
		if err != nil {
			g.err = err
			return err
		}
		g.solver = s
		g.done = false
		g.lastRank = 0
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.done || (g.paused && !g.tickOnce) {
		return nil
	}
	g.tickOnce = false

	t, err := g.solver.PlaceOne()
	if err != nil {
		g.err = err
		return err
	}
	g.lastRank = t.Rank
	if g.solver.Grid().FullyCovered() {
		g.done = true
	}
	return nil
}

// Draw renders the current occupancy state.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.solver.Grid()
	g.painter.Blit(screen, grid.Cells(), g.lastRank, g.scale)
	if g.overlay != nil {
		covered := 0
		for _, c := range grid.Cells() {
			if c != 0 {
				covered++
			}
		}
		g.overlay.Draw(screen, ui.Status{
			Towers:   grid.NumTowers(),
			Covered:  covered,
			Cells:    len(grid.Cells()),
			Done:     g.done,
			Paused:   g.paused,
			LastRank: g.lastRank,
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.solver.Grid().Size()
	return size.W * g.scale, size.H * g.scale
}
