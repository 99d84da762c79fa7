package cmd

import (
	"fmt"

	"github.com/signalnine/paretobench/internal/aggregate"
	"github.com/signalnine/paretobench/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	flagLogLevel string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "paretobench [root]",
		Short:        "Aggregate and chart multi-objective scheduling experiment results",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runAggregate,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flagLogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (built-in defaults when empty)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(newAggregateCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newParetoCmd())
	return root
}

// rootDir is the positional results root, falling back to the configured one.
func rootDir(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Results.Dir
}

func buildOptions(cfg *config.Config) aggregate.Options {
	return aggregate.Options{
		SummaryFile:      cfg.Results.SummaryFile,
		ExperimentPrefix: cfg.Results.ExperimentPrefix,
		Workers:          cfg.Loader.Workers,
	}
}
