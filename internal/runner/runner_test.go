package runner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCompletesAllTrials(t *testing.T) {
	cfg := Config{Height: 5, Width: 5, Trials: 200, Workers: 4, Seed: 42}
	counts, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, counts, cfg.Trials)
	for _, n := range counts {
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, cfg.Height*cfg.Width)
	}
}

func TestRunSingleWorkerIsDeterministic(t *testing.T) {
	cfg := Config{Height: 4, Width: 6, Trials: 50, Workers: 1, Seed: 7}
	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRunClampsWorkerCount(t *testing.T) {
	// More workers than trials and a zero worker count both still complete.
	counts, err := Run(Config{Height: 3, Width: 3, Trials: 2, Workers: 16, Seed: 1})
	require.NoError(t, err)
	require.Len(t, counts, 2)

	counts, err = Run(Config{Height: 3, Width: 3, Trials: 3, Workers: 0, Seed: 1})
	require.NoError(t, err)
	require.Len(t, counts, 3)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(Config{Height: 3, Width: 3, Trials: 0, Workers: 1, Seed: 1})
	require.Error(t, err)

	// Invalid grid dimensions surface from the workers with the trial named.
	_, err = Run(Config{Height: 0, Width: 3, Trials: 5, Workers: 2, Seed: 1})
	require.Error(t, err)
	require.ErrorContains(t, err, "trial")
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int{3, 1, 2, 2})
	require.Equal(t, 4, s.Trials)
	require.Equal(t, 1, s.Min)
	require.Equal(t, 3, s.Max)
	require.InDelta(t, 2.0, s.Mean, 1e-9)
	require.InDelta(t, 2.0, s.Median, 1e-9)

	require.Equal(t, Summary{}, Summarize(nil))
}
