package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/signalnine/paretobench/internal/config"
	"github.com/signalnine/paretobench/internal/result"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List discovered summaries and the metadata resolved from their paths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			root, err := filepath.Abs(rootDir(cfg, args))
			if err != nil {
				return err
			}
			paths, err := result.FindSummaries(root, cfg.Results.SummaryFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range paths {
				m := result.ParseMetadata(p, cfg.Results.ExperimentPrefix)
				rel, err := filepath.Rel(root, p)
				if err != nil {
					rel = p
				}
				fmt.Fprintf(w, "  - %s [%s / %s / %s]\n", rel, m.Experiment, m.Workflow, m.Scenario)
			}
			return nil
		},
	}
}
