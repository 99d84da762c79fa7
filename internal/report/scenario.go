package report

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
	"github.com/sirupsen/logrus"
)

// AllExperiments labels a selection that fell back to the whole table.
const AllExperiments = "ALL"

// Selection is the subset of the unified table that per-scenario artifacts
// are produced for.
type Selection struct {
	Experiment string
	Rows       *table.Table
}

// SelectExperiment picks the experiment to report on. A root directory that
// is itself an experiment selects that experiment; otherwise the
// lexicographically last experiment wins. An empty match falls back to all
// rows.
func SelectExperiment(unified *table.Table, root, prefix string) Selection {
	selected := ""
	if base := filepath.Base(root); strings.HasPrefix(base, prefix) {
		selected = base
	} else if exps := unified.Unique(result.ColExperiment); len(exps) > 0 {
		selected = exps[len(exps)-1]
	}

	rows := unified.Where(result.ColExperiment, selected)
	if rows.Len() == 0 {
		return Selection{Experiment: AllExperiments, Rows: unified.Clone()}
	}
	return Selection{Experiment: selected, Rows: rows}
}

// HasBestObjectives reports whether every best-on-Pareto column is present.
// The second result lists the missing ones.
func HasBestObjectives(t *table.Table) (bool, []string) {
	missing := aggregate.MissingColumns(t, result.BestObjectiveColumns())
	return len(missing) == 0, missing
}

// AlgoSummary holds the per-algorithm means of one scenario. Best is indexed
// like result.Objectives and is nil when best-objective columns are absent.
type AlgoSummary struct {
	Algorithm   result.Algorithm
	Hypervolume float64
	Best        []float64
}

type ScenarioReport struct {
	Experiment string
	Scenario   string
	Dir        string
	Rows       *table.Table
	HasBest    bool
	Algos      []AlgoSummary
}

// Scenarios computes one report per distinct scenario of the selection,
// sorted by scenario name.
func Scenarios(sel Selection, hasBest bool) []ScenarioReport {
	var reports []ScenarioReport
	for _, scenario := range sel.Rows.Unique(result.ColScenario) {
		rows := sel.Rows.Where(result.ColScenario, scenario)
		rep := ScenarioReport{
			Experiment: sel.Experiment,
			Scenario:   scenario,
			Dir:        rows.Value(result.ColScenarioDir, 0),
			Rows:       rows,
			HasBest:    hasBest,
		}
		for _, a := range result.Algorithms {
			s := AlgoSummary{Algorithm: a, Hypervolume: meanColumn(rows, result.HypervolumeColumn(a))}
			if hasBest {
				for _, o := range result.Objectives {
					s.Best = append(s.Best, meanColumn(rows, result.BestColumn(o, a)))
				}
			}
			rep.Algos = append(rep.Algos, s)
		}
		reports = append(reports, rep)
	}
	return reports
}

func meanColumn(t *table.Table, name string) float64 {
	vals, ok := t.Floats(name)
	if !ok {
		return math.NaN()
	}
	return aggregate.Mean(vals)
}

// AlgoMeansTable is the compact per-algorithm view of one scenario.
func AlgoMeansTable(rep ScenarioReport) *table.Table {
	algo := &table.Column{Name: "algorithm", Kind: table.Text}
	hv := &table.Column{Name: "hv_mean", Kind: table.Numeric}
	best := make([]*table.Column, 0, len(result.Objectives))
	if rep.HasBest {
		for _, o := range result.Objectives {
			best = append(best, &table.Column{Name: "best_" + o.Name + "_mean", Kind: table.Numeric})
		}
	}
	for _, s := range rep.Algos {
		algo.Str = append(algo.Str, s.Algorithm.Label)
		hv.Num = append(hv.Num, s.Hypervolume)
		for i, c := range best {
			c.Num = append(c.Num, s.Best[i])
		}
	}
	t, err := table.New(append([]*table.Column{algo, hv}, best...)...)
	if err != nil {
		logrus.Errorf("building algorithm means for %s: %v", rep.Scenario, err)
		return &table.Table{}
	}
	return t
}

// AllAlgoMeans stacks every scenario's algorithm means, tagged with the
// experiment and scenario they belong to.
func AllAlgoMeans(reports []ScenarioReport) (*table.Table, error) {
	parts := make([]*table.Table, 0, len(reports))
	for _, rep := range reports {
		t, err := AlgoMeansTable(rep).WithText(0, result.ColScenario, rep.Scenario)
		if err != nil {
			return nil, err
		}
		if t, err = t.WithText(0, result.ColExperiment, rep.Experiment); err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return table.Concat(parts...), nil
}
