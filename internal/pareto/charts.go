package pareto

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/plot"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/sirupsen/logrus"
)

// Files written next to the run's data.
const (
	ProjectionChart = "pareto_3d.png"
	EvolutionChart  = "hypervolume_evolution.png"
	BestFile        = "pareto_best.csv"
)

// Charter renders scatter and line charts. *plot.Renderer satisfies it.
type Charter interface {
	Scatter(path string, spec plot.ScatterSpec) error
	Lines(path string, spec plot.LineSpec) error
}

var _ Charter = (*plot.Renderer)(nil)

// SeriesName is the legend entry of an algorithm in run-level charts.
func SeriesName(a result.Algorithm) string {
	if a.Key == "aco" {
		return "MO-ACO"
	}
	return a.Label
}

// PairChart is the file of the 2D projection onto objectives i and j.
func PairChart(i, j int) string {
	return fmt.Sprintf("pareto_%s_%s.png", result.Objectives[i].Key, result.Objectives[j].Key)
}

// Outcome lists the files a Plot pass wrote and the ones it could not.
type Outcome struct {
	Written []string
	Failed  []string
}

func (o *Outcome) record(path string, err error) {
	if err != nil {
		logrus.Warnf("failed to write %s: %v", path, err)
		o.Failed = append(o.Failed, path)
		return
	}
	logrus.Infof("wrote %s", path)
	o.Written = append(o.Written, path)
}

// Title names a run as "<scenario> / <run>" from its directory.
func Title(runDir string) string {
	return filepath.Base(filepath.Dir(runDir)) + " / " + filepath.Base(runDir)
}

// Plot charts every front in runDir: the three pairwise projections, an
// oblique 3D projection, hypervolume evolution when logged, and the
// best-on-Pareto table. Only a run with no fronts at all is an error.
func Plot(runDir string, c Charter) (*Outcome, error) {
	fronts, err := LoadFronts(runDir)
	if err != nil {
		return nil, err
	}
	title := Title(runDir)
	out := &Outcome{}

	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, p := range pairs {
		x, y := result.Objectives[p[0]], result.Objectives[p[1]]
		spec := plot.ScatterSpec{
			Title:  fmt.Sprintf("Pareto fronts: %s vs %s (%s)", x.Label, y.Label, title),
			XLabel: axisLabel(x),
			YLabel: axisLabel(y),
		}
		for _, f := range fronts {
			spec.Series = append(spec.Series, plot.Series{
				Name: SeriesName(f.Algorithm),
				X:    f.Objectives[p[0]],
				Y:    f.Objectives[p[1]],
			})
		}
		path := filepath.Join(runDir, PairChart(p[0], p[1]))
		out.record(path, c.Scatter(path, spec))
	}

	path := filepath.Join(runDir, ProjectionChart)
	out.record(path, c.Scatter(path, Projection(fronts, title)))

	if hv := LoadHypervolume(runDir); len(hv) > 0 {
		spec := plot.LineSpec{
			Title:  fmt.Sprintf("Hypervolume evolution (%s)", title),
			XLabel: "Generation",
			YLabel: "Hypervolume",
		}
		for _, s := range hv {
			spec.Series = append(spec.Series, plot.Series{
				Name: SeriesName(s.Algorithm),
				X:    s.Generation,
				Y:    s.Hypervolume,
			})
		}
		path := filepath.Join(runDir, EvolutionChart)
		out.record(path, c.Lines(path, spec))
	}

	path = filepath.Join(runDir, BestFile)
	best, err := BestTable(fronts)
	if err == nil {
		err = best.WriteFile(path)
	}
	out.record(path, err)
	return out, nil
}

func axisLabel(o result.Objective) string {
	return fmt.Sprintf("%s (%s)", o.Label, o.Key)
}

// Projection maps all fronts into one oblique view of the normalized
// objective cube: f1 right, f2 up, f3 receding at 45 degrees, half scale.
func Projection(fronts []Front, title string) plot.ScatterSpec {
	bounds := make([][2]float64, len(result.Objectives))
	for i := range bounds {
		var all []float64
		for _, f := range fronts {
			all = append(all, f.Objectives[i]...)
		}
		s := aggregate.Summarize(all)
		bounds[i] = [2]float64{s.Min, s.Max}
	}
	depth := 0.5 * math.Sqrt2 / 2

	spec := plot.ScatterSpec{
		Title:  fmt.Sprintf("Pareto fronts, oblique 3D projection (%s)", title),
		XLabel: "Makespan (f1), normalized; Energy (f3) recedes",
		YLabel: "Cost (f2), normalized",
	}
	for _, f := range fronts {
		n := f.Len()
		xs, ys := make([]float64, n), make([]float64, n)
		for k := 0; k < n; k++ {
			f1 := normalize(f.Objectives[0][k], bounds[0])
			f2 := normalize(f.Objectives[1][k], bounds[1])
			f3 := normalize(f.Objectives[2][k], bounds[2])
			xs[k] = f1 + depth*f3
			ys[k] = f2 + depth*f3
		}
		spec.Series = append(spec.Series, plot.Series{Name: SeriesName(f.Algorithm), X: xs, Y: ys})
	}
	return spec
}

// normalize scales v into [0, 1]; a degenerate range maps to 0.
func normalize(v float64, b [2]float64) float64 {
	if b[1] <= b[0] {
		if math.IsNaN(v) {
			return v
		}
		return 0
	}
	return (v - b[0]) / (b[1] - b[0])
}
