package cmd

import (
	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/config"
	"github.com/signalnine/paretobench/internal/report"
	"github.com/spf13/cobra"
)

var flagFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [root]",
		Short: "Print grouped statistics without writing artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			res, err := aggregate.Build(rootDir(cfg, args), buildOptions(cfg))
			if err != nil {
				return err
			}
			return report.Generate(res, flagFormat, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
