package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"towercover/internal/report"
	"towercover/internal/runner"
	"towercover/internal/solve"
)

func main() {
	cfg := runner.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	htmlOut := flag.String("html", "", "write an HTML histogram of the distribution to this path")
	pngOut := flag.String("png", "", "write a PNG histogram of the distribution to this path")
	dump := flag.Bool("dump", false, "run one extra trial with the base seed and print its tower list")
	flag.Parse()

	fmt.Printf("Covering %dx%d grid, %d trials (%d workers, base seed %d)\n",
		cfg.Height, cfg.Width, cfg.Trials, cfg.Workers, cfg.Seed)

	start := time.Now()
	counts, err := runner.Run(cfg)
	if err != nil {
		log.Fatalf("run trials: %v", err)
	}
	elapsed := time.Since(start)

	summary := runner.Summarize(counts)
	fmt.Printf("%s (elapsed %s)\n", summary, elapsed.Round(time.Millisecond))

	title := fmt.Sprintf("Towers to cover a %dx%d grid", cfg.Height, cfg.Width)
	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			log.Fatalf("create %s: %v", *htmlOut, err)
		}
		if err := report.WriteHistogramHTML(f, title, counts); err != nil {
			log.Fatalf("write HTML histogram: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", *htmlOut, err)
		}
		fmt.Printf("wrote %s\n", *htmlOut)
	}
	if *pngOut != "" {
		if err := report.SaveHistogramPNG(*pngOut, title, counts); err != nil {
			log.Fatalf("write PNG histogram: %v", err)
		}
		fmt.Printf("wrote %s\n", *pngOut)
	}

	if *dump {
		s, err := solve.New(cfg.Height, cfg.Width, cfg.Seed)
		if err != nil {
			log.Fatalf("create solver: %v", err)
		}
		n, err := s.RunTrial()
		if err != nil {
			log.Fatalf("run trial: %v", err)
		}
		fmt.Printf("\nSample trial used %d towers:\n%s\n", n, report.DumpTowers(s.Grid().Towers()))
	}
}
