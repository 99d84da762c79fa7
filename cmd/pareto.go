package cmd

import (
	"fmt"

	"github.com/signalnine/paretobench/internal/config"
	"github.com/signalnine/paretobench/internal/pareto"
	"github.com/signalnine/paretobench/internal/plot"
	"github.com/spf13/cobra"
)

func newParetoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pareto [run-dir]",
		Short: "Chart the Pareto fronts and hypervolume logs of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			runDir := "."
			if len(args) > 0 {
				runDir = args[0]
			}
			out, err := pareto.Plot(runDir, plot.NewRenderer(cfg.Charts.Width, cfg.Charts.Height))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artifacts: %d written, %d failed\n", len(out.Written), len(out.Failed))
			return nil
		},
	}
}
