package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/colorfulnotion/branchcost/bencherrors"
	"github.com/colorfulnotion/branchcost/log"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartTitle = "Branch misprediction cost"

func newChart(o *Outcome) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    chartTitle,
			Subtitle: fmt.Sprintf("%s, speedup %sx", o.Config.String(), FormatSpeedup(o.Speedup())),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns"}),
	)
	bar.SetXAxis([]string{"branch-heavy", "branch-free"}).
		AddSeries("elapsed", []opts.BarData{
			{Name: "branch-heavy", Value: o.Branching.Elapsed.Nanoseconds()},
			{Name: "branch-free", Value: o.Branchless.Elapsed.Nanoseconds()},
		}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// RenderChart writes an HTML page with a bar chart of both elapsed times.
func RenderChart(w io.Writer, o *Outcome) error {
	page := components.NewPage()
	page.PageTitle = chartTitle
	page.AddCharts(newChart(o))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("%w: %v", bencherrors.ErrRChartWrite, err)
	}
	return nil
}

func WriteChart(path string, o *Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", bencherrors.ErrRChartWrite, err)
	}
	return writeChartTo(f, path, o)
}

func writeChartTo(f io.WriteCloser, path string, o *Outcome) error {
	if err := RenderChart(f, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", bencherrors.ErrRChartWrite, path, err)
	}
	log.Info(log.ReportMonitoring, "chart saved", "path", path)
	return nil
}
