package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/plot"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/sirupsen/logrus"
)

// Artifact file names.
const (
	AllRunsFile         = "all_runs.csv"
	AlgoMeansFile       = "algo_means.csv"
	HypervolumeChart    = "hv_mean_by_algo.png"
	UnifiedFile         = "all_summaries.csv"
	GroupedStatsFile    = "grouped_stats.csv"
	ScenarioMeansFile   = "scenario_algo_means.csv"
	DefaultAggregateDir = "_aggregate"
)

// BestObjectiveChart is the bar chart file of one best-on-Pareto objective.
func BestObjectiveChart(o result.Objective) string {
	return "best_" + o.Name + "_mean_by_algo.png"
}

// Charter renders bar charts. *plot.Renderer satisfies it.
type Charter interface {
	Bars(path string, spec plot.BarSpec) error
}

type Options struct {
	ExperimentPrefix  string
	AggregateDir      string
	ScenarioArtifacts bool
	Charts            bool
}

// Outcome summarizes one reporting pass.
type Outcome struct {
	Selection string
	HasBest   bool
	Scenarios []ScenarioReport
	Written   []string
	Failed    []string
}

// Write selects the experiment to report on, computes per-scenario means and
// writes every artifact. Individual write failures are logged and collected
// in Outcome.Failed; they never stop the remaining artifacts.
func Write(res *aggregate.Result, charter Charter, opts Options) *Outcome {
	sel := SelectExperiment(res.Unified, res.Root, opts.ExperimentPrefix)
	logrus.Infof("plot selection: experiment=%s", sel.Experiment)

	hasBest, missing := HasBestObjectives(res.Unified)
	if !hasBest {
		logrus.Warnf("best-objective columns missing, skipping best-objective charts: %v", missing)
	}

	out := &Outcome{
		Selection: sel.Experiment,
		HasBest:   hasBest,
		Scenarios: Scenarios(sel, hasBest),
	}
	if !opts.Charts {
		charter = nil
	}

	if opts.ScenarioArtifacts {
		for _, rep := range out.Scenarios {
			out.writeScenario(rep, charter)
		}
	}
	if opts.AggregateDir != "" {
		out.writeAggregate(res, filepath.Join(res.Root, opts.AggregateDir))
	}
	return out
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

func (o *Outcome) writeScenario(rep ScenarioReport, charter Charter) {
	if err := os.MkdirAll(rep.Dir, 0o755); err != nil {
		o.record(rep.Dir, fmt.Errorf("creating scenario dir: %w", err))
		return
	}

	path := filepath.Join(rep.Dir, AllRunsFile)
	o.record(path, rep.Rows.WriteFile(path))

	path = filepath.Join(rep.Dir, AlgoMeansFile)
	o.record(path, AlgoMeansTable(rep).WriteFile(path))

	if charter == nil {
		return
	}
	for _, c := range ChartSpecs(rep) {
		path := filepath.Join(rep.Dir, c.File)
		o.record(path, charter.Bars(path, c.Spec))
	}
}

func (o *Outcome) writeAggregate(res *aggregate.Result, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		o.record(dir, fmt.Errorf("creating aggregate dir: %w", err))
		return
	}

	path := filepath.Join(dir, UnifiedFile)
	o.record(path, res.Unified.WriteFile(path))

	path = filepath.Join(dir, GroupedStatsFile)
	o.record(path, res.Stats.WriteFile(path))

	path = filepath.Join(dir, ScenarioMeansFile)
	means, err := AllAlgoMeans(o.Scenarios)
	if err == nil {
		err = means.WriteFile(path)
	}
	o.record(path, err)
}

// NamedChart is one chart to draw for a scenario.
type NamedChart struct {
	File string
	Spec plot.BarSpec
}

// ChartSpecs lists the bar charts of a scenario: hypervolume always, the
// three best-objective charts only when the scenario has them.
func ChartSpecs(rep ScenarioReport) []NamedChart {
	labels := make([]string, len(rep.Algos))
	hv := make([]float64, len(rep.Algos))
	for i, s := range rep.Algos {
		labels[i] = s.Algorithm.Label
		hv[i] = s.Hypervolume
	}
	suffix := fmt.Sprintf("(%s | %s)", rep.Experiment, rep.Scenario)

	charts := []NamedChart{{
		File: HypervolumeChart,
		Spec: plot.BarSpec{
			Title:  "HV mean by algorithm " + suffix,
			YLabel: "Hypervolume (mean over runs)",
			Labels: labels,
			Values: hv,
		},
	}}
	if !rep.HasBest {
		return charts
	}
	for oi, obj := range result.Objectives {
		vals := make([]float64, len(rep.Algos))
		for i, s := range rep.Algos {
			vals[i] = s.Best[oi]
		}
		charts = append(charts, NamedChart{
			File: BestObjectiveChart(obj),
			Spec: plot.BarSpec{
				Title:  fmt.Sprintf("Best %s mean by algorithm %s", strings.ToLower(obj.Label), suffix),
				YLabel: fmt.Sprintf("Best %s on Pareto (mean over runs)", obj.Label),
				Labels: labels,
				Values: vals,
			},
		})
	}
	return charts
}

var _ Charter = (*plot.Renderer)(nil)
