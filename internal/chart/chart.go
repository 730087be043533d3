// Package chart turns formula plots into standalone ECharts HTML pages.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"dc-circuit-lab/internal/formula"
)

const markerSize = 10

// NewLine builds a value-axis line chart for p. Marker series are drawn as
// an overlaid scatter, reference series as dashed lines.
func NewLine(p formula.Plot, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: p.Title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    p.Title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: p.XLabel,
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  p.YLabel,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)

	var markers *charts.Scatter
	for _, s := range p.Series {
		switch s.Style {
		case formula.StyleMarker:
			if markers == nil {
				markers = charts.NewScatter()
			}
			markers.AddSeries(s.Name, scatterData(s.Points))
		case formula.StyleReference:
			line.AddSeries(s.Name, lineData(s.Points),
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
				charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Type: "dashed"}),
			)
		default:
			line.AddSeries(s.Name, lineData(s.Points),
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
				charts.WithLineStyleOpts(opts.LineStyle{Width: 3}),
			)
		}
	}
	if markers != nil {
		line.Overlap(markers)
	}
	return line
}

// Render writes p as a single-chart HTML page.
func Render(w io.Writer, p formula.Plot, subtitle string) error {
	return NewLine(p, subtitle).Render(w)
}

// RenderPage writes every plot onto one HTML page, in order.
func RenderPage(w io.Writer, plots ...formula.Plot) error {
	page := components.NewPage()
	for _, p := range plots {
		page.AddCharts(NewLine(p, ""))
	}
	return page.Render(w)
}

// SplitSeries returns one plot per series of p, each titled with the
// series name. Used to stack curves that share an axis but not a scale.
func SplitSeries(p formula.Plot) []formula.Plot {
	out := make([]formula.Plot, len(p.Series))
	for i, s := range p.Series {
		out[i] = formula.Plot{
			Title:  s.Name,
			XLabel: p.XLabel,
			YLabel: p.YLabel,
			Series: []formula.PlotSeries{s},
		}
	}
	return out
}

func lineData(c formula.CurveSample) []opts.LineData {
	items := make([]opts.LineData, len(c))
	for i, pt := range c {
		items[i] = opts.LineData{Value: []float64{pt.X, pt.Y}}
	}
	return items
}

func scatterData(c formula.CurveSample) []opts.ScatterData {
	items := make([]opts.ScatterData, len(c))
	for i, pt := range c {
		items[i] = opts.ScatterData{Value: []float64{pt.X, pt.Y}, SymbolSize: markerSize}
	}
	return items
}
