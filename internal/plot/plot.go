// Package plot renders bar, scatter and line charts to PNG files.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BarSpec is one bar per label.
type BarSpec struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
}

type Series struct {
	Name string
	X, Y []float64
}

// ScatterSpec draws each series as unconnected points.
type ScatterSpec struct {
	Title          string
	XLabel, YLabel string
	Series         []Series
}

// LineSpec draws each series as a connected line.
type LineSpec struct {
	Title          string
	XLabel, YLabel string
	Series         []Series
}

// Palette matches the per-algorithm colors used across all charts.
var Palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
}

type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

func (r *Renderer) Bars(path string, spec BarSpec) error {
	if len(spec.Labels) != len(spec.Values) {
		return fmt.Errorf("bar chart %q: %d labels for %d values", spec.Title, len(spec.Labels), len(spec.Values))
	}
	bars := make([]chart.Value, len(spec.Values))
	var finite []float64
	for i, v := range spec.Values {
		label := spec.Labels[i]
		if !isFinite(v) {
			v = 0
			label += " (n/a)"
		} else {
			finite = append(finite, v)
		}
		bars[i] = chart.Value{
			Value: v,
			Label: label,
			Style: chart.Style{FillColor: Palette[i%len(Palette)], StrokeColor: Palette[i%len(Palette)]},
		}
	}
	lo, hi := barRange(finite)

	graph := chart.BarChart{
		Title:      spec.Title,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   r.Width / (2*len(bars) + 2),
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	return writePNG(path, graph.Render)
}

func (r *Renderer) Scatter(path string, spec ScatterSpec) error {
	raw := finite(spec.Series)
	series := make([]chart.Series, 0, len(raw))
	for i, s := range raw {
		col := Palette[i%len(Palette)]
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    col,
			},
		})
	}
	return r.xy(path, spec.Title, spec.XLabel, spec.YLabel, raw, series)
}

func (r *Renderer) Lines(path string, spec LineSpec) error {
	raw := finite(spec.Series)
	series := make([]chart.Series, 0, len(raw))
	for i, s := range raw {
		col := Palette[i%len(Palette)]
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: col},
		})
	}
	return r.xy(path, spec.Title, spec.XLabel, spec.YLabel, raw, series)
}

func (r *Renderer) xy(path, title, xLabel, yLabel string, raw []Series, series []chart.Series) error {
	if len(series) == 0 {
		return fmt.Errorf("chart %q: no series", title)
	}
	var xs, ys []float64
	for _, s := range raw {
		xs = append(xs, s.X...)
		ys = append(ys, s.Y...)
	}
	xlo, xhi := paddedRange(xs)
	ylo, yhi := paddedRange(ys)

	graph := chart.Chart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xLabel, Range: &chart.ContinuousRange{Min: xlo, Max: xhi}},
		YAxis:      chart.YAxis{Name: yLabel, Range: &chart.ContinuousRange{Min: ylo, Max: yhi}},
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return writePNG(path, graph.Render)
}

// finite drops points with a missing coordinate and series left empty.
func finite(in []Series) []Series {
	var out []Series
	for _, s := range in {
		n := min(len(s.X), len(s.Y))
		c := Series{Name: s.Name}
		for i := 0; i < n; i++ {
			if isFinite(s.X[i]) && isFinite(s.Y[i]) {
				c.X = append(c.X, s.X[i])
				c.Y = append(c.Y, s.Y[i])
			}
		}
		if len(c.X) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// barRange always includes zero so bars grow from the baseline.
func barRange(vals []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return 0, 1
	}
	pad := (hi - lo) * 0.05
	if lo < 0 {
		lo -= pad
	}
	return lo, hi + pad
}

// paddedRange returns a non-degenerate axis range around the finite values.
func paddedRange(vals []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	pad := span * 0.05
	return lo - pad, hi + pad
}

func writePNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(chart.PNG, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
