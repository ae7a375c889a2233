package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the per-iteration sample series as an HTML line
// chart, for eyeballing warm-vs-cold drift and outlier iterations.
func WriteChart(w io.Writer, r Run) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s on %s", r.Scenario, r.Backend),
			Subtitle: fmt.Sprintf("per-iteration %s (%s), run %s", r.Unit, r.Type, r.ID),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xs := make([]int, len(r.Samples))
	ys := make([]opts.LineData, len(r.Samples))
	for i, s := range r.Samples {
		xs[i] = i
		ys[i] = opts.LineData{Value: s.Value}
	}
	line.SetXAxis(xs).AddSeries("elapsed", ys)
	return line.Render(w)
}
