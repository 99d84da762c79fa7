package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistic suffixes, in the order they are emitted per metric.
var Statistics = []string{"mean", "std", "min", "max", "count"}

// GroupKey identifies one aggregate row.
type GroupKey struct {
	Experiment string
	Workflow   string
	Scenario   string
}

func (k GroupKey) less(o GroupKey) bool {
	if k.Experiment != o.Experiment {
		return k.Experiment < o.Experiment
	}
	if k.Workflow != o.Workflow {
		return k.Workflow < o.Workflow
	}
	return k.Scenario < o.Scenario
}

// Summary holds the statistics of one metric over one group. Mean, Std, Min
// and Max ignore missing cells; Count is the number of rows in the group.
type Summary struct {
	Mean, Std, Min, Max float64
	Count               int
}

// Summarize computes the statistics of xs, skipping NaN cells. Std is the
// sample standard deviation and is NaN with fewer than two values.
func Summarize(xs []float64) Summary {
	present := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			present = append(present, x)
		}
	}
	s := Summary{Mean: math.NaN(), Std: math.NaN(), Min: math.NaN(), Max: math.NaN(), Count: len(xs)}
	if len(present) == 0 {
		return s
	}
	s.Mean = stat.Mean(present, nil)
	s.Min = floats.Min(present)
	s.Max = floats.Max(present)
	if len(present) > 1 {
		s.Std = stat.StdDev(present, nil)
	}
	return s
}

// Mean is the mean of the non-missing values of xs, NaN when there are none.
func Mean(xs []float64) float64 {
	return Summarize(xs).Mean
}

// Groups partitions the rows of t by (experiment, workflow, scenario). Keys
// are returned sorted; row indices keep table order.
func Groups(t *table.Table) ([]GroupKey, map[GroupKey][]int) {
	rows := map[GroupKey][]int{}
	var keys []GroupKey
	for i := 0; i < t.Len(); i++ {
		k := GroupKey{
			Experiment: t.Value(result.ColExperiment, i),
			Workflow:   t.Value(result.ColWorkflow, i),
			Scenario:   t.Value(result.ColScenario, i),
		}
		if _, seen := rows[k]; !seen {
			keys = append(keys, k)
		}
		rows[k] = append(rows[k], i)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys, rows
}

// GroupStats computes one row per group with <metric>_<statistic> columns for
// every metric present in t. Absent metrics are skipped; the caller reports
// them. Cells that do not parse as numbers count as missing, so a bad cell
// only affects its own group.
func GroupStats(t *table.Table, metrics []string) (*table.Table, error) {
	var present []string
	seen := map[string]bool{}
	for _, m := range metrics {
		if !t.Has(m) || seen[m] {
			continue
		}
		seen[m] = true
		if c, _ := t.Column(m); c.Kind != table.Numeric {
			logrus.Warnf("column %s has non-numeric cells; counting them as missing", m)
		}
		present = append(present, m)
	}

	keys, rows := Groups(t)
	experiment := &table.Column{Name: result.ColExperiment, Kind: table.Text}
	workflow := &table.Column{Name: result.ColWorkflow, Kind: table.Text}
	scenario := &table.Column{Name: result.ColScenario, Kind: table.Text}
	for _, k := range keys {
		experiment.Str = append(experiment.Str, k.Experiment)
		workflow.Str = append(workflow.Str, k.Workflow)
		scenario.Str = append(scenario.Str, k.Scenario)
	}
	cols := []*table.Column{experiment, workflow, scenario}

	for _, m := range present {
		values, _ := t.Floats(m)
		statCols := make([]*table.Column, len(Statistics))
		for i, s := range Statistics {
			statCols[i] = &table.Column{Name: m + "_" + s, Kind: table.Numeric}
		}
		for _, k := range keys {
			group := make([]float64, len(rows[k]))
			for i, r := range rows[k] {
				group[i] = values[r]
			}
			s := Summarize(group)
			for i, v := range []float64{s.Mean, s.Std, s.Min, s.Max, float64(s.Count)} {
				statCols[i].Num = append(statCols[i].Num, v)
			}
		}
		cols = append(cols, statCols...)
	}

	out, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("building grouped statistics: %w", err)
	}
	return out, nil
}
