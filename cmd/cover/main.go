//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"towercover/internal/app"
	"towercover/internal/solve"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	solver, err := solve.New(cfg.Height, cfg.Width, cfg.Seed)
	if err != nil {
		log.Fatalf("create solver: %v", err)
	}

	game := app.New(solver, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("towercover")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
