package emojiscan

import (
	"errors"
	"fmt"

	"github.com/emojiscan/emojiscan/internal/engine"
	"github.com/emojiscan/emojiscan/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Record every emoji currently found so later scans hide it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			reports, err := engine.Scan(cmd.Context(), s.cfg)
			if err != nil && !errors.Is(err, engine.ErrRootUnreadable) {
				return err
			}
			path := s.baseline
			if path == "" {
				path = report.DefaultBaselineFile
			}
			if err := report.SaveBaseline(path, reports); err != nil {
				return err
			}
			n := 0
			for _, r := range reports {
				n += len(r.Emoji)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %s (%d entries)\n", path, n)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
