package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/signalnine/paretobench/internal/table"
)

// MetricStats is one metric of one group. Statistics that are undefined are
// nil so they encode as JSON null.
type MetricStats struct {
	Metric string   `json:"metric"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

type GroupSummary struct {
	Experiment string        `json:"experiment"`
	Workflow   string        `json:"workflow"`
	Scenario   string        `json:"scenario"`
	Metrics    []MetricStats `json:"metrics"`
}

// Generate renders grouped statistics as a table, markdown or json.
func Generate(res *aggregate.Result, format string, w io.Writer) error {
	summaries := Summaries(res.Stats)

	switch format {
	case "markdown":
		return writeMarkdown(summaries, w)
	case "json":
		return writeJSON(summaries, w)
	case "table", "":
		return writeTable(summaries, w)
	default:
		return fmt.Errorf("unknown format %q (want table, markdown or json)", format)
	}
}

// Summaries reads a grouped statistics table back into per-group records.
func Summaries(stats *table.Table) []GroupSummary {
	var metrics []string
	for _, m := range result.MetricColumns() {
		if stats.Has(m + "_mean") {
			metrics = append(metrics, m)
		}
	}

	out := make([]GroupSummary, stats.Len())
	for i := range out {
		g := GroupSummary{
			Experiment: stats.Value(result.ColExperiment, i),
			Workflow:   stats.Value(result.ColWorkflow, i),
			Scenario:   stats.Value(result.ColScenario, i),
		}
		for _, m := range metrics {
			g.Metrics = append(g.Metrics, MetricStats{
				Metric: m,
				Count:  int(cell(stats, m+"_count", i)),
				Mean:   ptr(cell(stats, m+"_mean", i)),
				Std:    ptr(cell(stats, m+"_std", i)),
				Min:    ptr(cell(stats, m+"_min", i)),
				Max:    ptr(cell(stats, m+"_max", i)),
			})
		}
		out[i] = g
	}
	return out
}

func cell(t *table.Table, name string, row int) float64 {
	vals, ok := t.Floats(name)
	if !ok {
		return math.NaN()
	}
	return vals[row]
}

func ptr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}

func writeTable(summaries []GroupSummary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXPERIMENT\tWORKFLOW\tSCENARIO\tMETRIC\tCOUNT\tMEAN\tSTD\tMIN\tMAX")
	fmt.Fprintln(tw, strings.Repeat("-", 100))
	for _, g := range summaries {
		for _, m := range g.Metrics {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				g.Experiment, g.Workflow, g.Scenario, m.Metric, m.Count, num(m.Mean), num(m.Std), num(m.Min), num(m.Max))
		}
	}
	return tw.Flush()
}

func writeMarkdown(summaries []GroupSummary, w io.Writer) error {
	fmt.Fprintln(w, "| Experiment | Workflow | Scenario | Metric | Count | Mean | Std | Min | Max |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|---|")
	for _, g := range summaries {
		for _, m := range g.Metrics {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %d | %s | %s | %s | %s |\n",
				g.Experiment, g.Workflow, g.Scenario, m.Metric, m.Count, num(m.Mean), num(m.Std), num(m.Min), num(m.Max))
		}
	}
	return nil
}

func writeJSON(summaries []GroupSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
