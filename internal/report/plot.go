package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogramPNG writes a histogram of the tower-count distribution to a
// PNG file. One bin per distinct tower count.
func SaveHistogramPNG(path, title string, counts []int) error {
	if len(counts) == 0 {
		return fmt.Errorf("report: no trial outcomes to plot")
	}

	vals := make(plotter.Values, len(counts))
	lo, hi := counts[0], counts[0]
	for i, c := range counts {
		vals[i] = float64(c)
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}

	bins := hi - lo + 1
	hist, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("report: build histogram: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "towers"
	p.Y.Label.Text = "trials"
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
