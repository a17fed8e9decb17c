// Package report formats trial outcomes: a textual tower dump, an HTML
// histogram of the tower-count distribution, and a PNG histogram.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"towercover/internal/core"
)

// DumpTowers renders the committed towers, one per line in rank order.
func DumpTowers(towers []core.Tower) string {
	lines := make([]string, len(towers))
	for i, t := range towers {
		lines[i] = t.String()
	}
	return strings.Join(lines, "\n")
}

// binCounts tallies how many trials used each tower count, returning the
// counts in ascending order alongside their frequencies.
func binCounts(counts []int) (values []int, freqs []int) {
	byValue := make(map[int]int)
	for _, c := range counts {
		byValue[c]++
	}
	values = make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Ints(values)
	freqs = make([]int, len(values))
	for i, v := range values {
		freqs[i] = byValue[v]
	}
	return values, freqs
}

// WriteHistogramHTML renders a bar chart of the tower-count distribution as a
// standalone HTML page.
func WriteHistogramHTML(w io.Writer, title string, counts []int) error {
	values, freqs := binCounts(counts)

	x := make([]string, len(values))
	y := make([]opts.BarData, len(freqs))
	for i, v := range values {
		x[i] = fmt.Sprintf("%d", v)
		y[i] = opts.BarData{Value: freqs[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("trials=%d", len(counts))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "towers"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "trials"}),
	)
	bar.SetXAxis(x).AddSeries("trials", y)

	return bar.Render(w)
}
