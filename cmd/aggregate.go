package cmd

import (
	"fmt"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/config"
	"github.com/signalnine/paretobench/internal/plot"
	"github.com/signalnine/paretobench/internal/report"
	"github.com/spf13/cobra"
)

func newAggregateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate [root]",
		Short: "Merge every summary under root and write tables and charts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAggregate,
	}
}

// runAggregate is shared by the aggregate subcommand and the bare root command.
func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	res, err := aggregate.Build(rootDir(cfg, args), buildOptions(cfg))
	if err != nil {
		return err
	}
	out := report.Write(res, plot.NewRenderer(cfg.Charts.Width, cfg.Charts.Height), report.Options{
		ExperimentPrefix:  cfg.Results.ExperimentPrefix,
		AggregateDir:      cfg.Output.AggregateDir,
		ScenarioArtifacts: cfg.Output.ScenarioArtifacts,
		Charts:            cfg.Output.Charts,
	})

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Summaries: %d (%d rows, %d groups)\n", len(res.Summaries), res.Unified.Len(), res.Stats.Len())
	fmt.Fprintf(w, "Experiment: %s (%d scenarios)\n", out.Selection, len(out.Scenarios))
	fmt.Fprintf(w, "Artifacts: %d written, %d failed\n", len(out.Written), len(out.Failed))
	return nil
}
