package runner

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of tower counts from a batch of trials.
type Summary struct {
	Trials int
	Min    int
	Max    int
	Mean   float64
	StdDev float64
	Q1     float64
	Median float64
	Q3     float64
}

// Summarize computes distribution statistics over the trial outcomes.
func Summarize(counts []int) Summary {
	if len(counts) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	sort.Float64s(xs)

	return Summary{
		Trials: len(counts),
		Min:    int(xs[0]),
		Max:    int(xs[len(xs)-1]),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, xs, nil),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("trials=%d min=%d max=%d mean=%.3f stddev=%.3f q1=%.1f median=%.1f q3=%.1f",
		s.Trials, s.Min, s.Max, s.Mean, s.StdDev, s.Q1, s.Median, s.Q3)
}
