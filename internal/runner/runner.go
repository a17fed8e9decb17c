// Package runner fans independent covering trials out over a pool of worker
// goroutines and aggregates the tower counts into a distribution.
package runner

import (
	"flag"
	"fmt"
	"runtime"
	"sync"

	"towercover/internal/solve"
)

// Config holds the scalar knobs for a batch of trials.
type Config struct {
	Height  int
	Width   int
	Trials  int
	Workers int
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Height:  10,
		Width:   10,
		Trials:  1000,
		Workers: runtime.NumCPU(),
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Trials, "trials", c.Trials, "number of trials to run")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base random seed; worker i uses seed+i")
}

type result struct {
	trial  int
	towers int
	err    error
}

// Run executes cfg.Trials covering trials across cfg.Workers goroutines and
// returns the tower counts. Each worker owns one Solver (grid plus RNG seeded
// cfg.Seed + worker index) and reuses it across its trials, so setup cost is
// amortized and no state is shared between workers.
//
// Counts are recorded in completion order, not submission order: outcomes are
// i.i.d., so the distribution is unaffected, but counts[i] is not "the i-th
// submitted trial". A trial that fails aborts the run and the error names the
// trial and the cause.
func Run(cfg Config) ([]int, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("runner: trials must be positive, got %d", cfg.Trials)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	jobs := make(chan int)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			s, err := solve.New(cfg.Height, cfg.Width, cfg.Seed+int64(worker))
			if err != nil {
				for trial := range jobs {
					results <- result{trial: trial, err: err}
				}
				return
			}
			for trial := range jobs {
				n, err := s.RunTrial()
				results <- result{trial: trial, towers: n, err: err}
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for trial := 0; trial < cfg.Trials; trial++ {
			jobs <- trial
		}
		close(jobs)
	}()

	counts := make([]int, 0, cfg.Trials)
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("runner: trial %d failed: %w", res.trial, res.err)
			}
			continue
		}
		counts = append(counts, res.towers)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return counts, nil
}
