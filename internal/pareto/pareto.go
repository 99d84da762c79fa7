// Package pareto reads the per-run Pareto front and hypervolume files an
// optimizer run leaves behind and charts them.
package pareto

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
)

// ErrNoFronts is returned when a run directory holds no readable front.
var ErrNoFronts = errors.New("no pareto front files found")

// HypervolumeAlgorithms are the algorithms that log hypervolume per generation.
var HypervolumeAlgorithms = result.Algorithms[:2]

// Front is the non-dominated set one algorithm produced in one run.
// Objectives is indexed like result.Objectives.
type Front struct {
	Algorithm  result.Algorithm
	Objectives [][]float64
}

func (f Front) Len() int {
	if len(f.Objectives) == 0 {
		return 0
	}
	return len(f.Objectives[0])
}

// Best returns the best-on-Pareto value of every objective: the minimum over
// the front's points, NaN when the objective has no value.
func (f Front) Best() []float64 {
	best := make([]float64, len(result.Objectives))
	for i := range best {
		best[i] = math.NaN()
		if i < len(f.Objectives) {
			best[i] = aggregate.Summarize(f.Objectives[i]).Min
		}
	}
	return best
}

// ReadFront parses one pareto_<algo>.csv file.
func ReadFront(path string, a result.Algorithm) (Front, error) {
	t, err := table.ReadFile(path)
	if err != nil {
		return Front{}, err
	}
	front := Front{Algorithm: a}
	for _, o := range result.Objectives {
		vals, ok := t.Floats(result.ObjectiveColumn(o))
		if !ok {
			return Front{}, fmt.Errorf("%s: missing column %s", path, result.ObjectiveColumn(o))
		}
		front.Objectives = append(front.Objectives, vals)
	}
	return front, nil
}

// LoadFronts reads the front of every algorithm found in runDir, in
// algorithm order. Missing or unreadable files are skipped with a warning.
func LoadFronts(runDir string) ([]Front, error) {
	var fronts []Front
	for _, a := range result.Algorithms {
		path := result.ParetoFile(runDir, a)
		f, err := ReadFront(path, a)
		if err != nil {
			logrus.Warnf("skipping %s front: %v", a.Label, err)
			continue
		}
		fronts = append(fronts, f)
	}
	if len(fronts) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFronts, runDir)
	}
	return fronts, nil
}

// Series is one algorithm's hypervolume per generation.
type Series struct {
	Algorithm   result.Algorithm
	Generation  []float64
	Hypervolume []float64
}

// LoadHypervolume reads the hypervolume logs present in runDir. Absent files
// are expected and only logged at debug level.
func LoadHypervolume(runDir string) []Series {
	var out []Series
	for _, a := range HypervolumeAlgorithms {
		path := result.HypervolumeFile(runDir, a)
		t, err := table.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			logrus.Debugf("no hypervolume log %s", path)
			continue
		}
		if err != nil {
			logrus.Warnf("skipping hypervolume log %s: %v", path, err)
			continue
		}
		gen, okG := t.Floats("generation")
		hv, okH := t.Floats("hypervolume")
		if !okG || !okH {
			logrus.Warnf("skipping hypervolume log %s: want columns generation, hypervolume", path)
			continue
		}
		out = append(out, Series{Algorithm: a, Generation: gen, Hypervolume: hv})
	}
	return out
}

// BestTable tabulates the best-on-Pareto objectives of each front.
func BestTable(fronts []Front) (*table.Table, error) {
	algo := &table.Column{Name: "algorithm", Kind: table.Text}
	points := &table.Column{Name: "points", Kind: table.Numeric}
	cols := []*table.Column{algo, points}
	for _, o := range result.Objectives {
		cols = append(cols, &table.Column{Name: "best_" + o.Name, Kind: table.Numeric})
	}
	for _, f := range fronts {
		algo.Str = append(algo.Str, f.Algorithm.Label)
		points.Num = append(points.Num, float64(f.Len()))
		for i, v := range f.Best() {
			cols[2+i].Num = append(cols[2+i].Num, v)
		}
	}
	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("building best-on-pareto table: %w", err)
	}
	return t, nil
}
