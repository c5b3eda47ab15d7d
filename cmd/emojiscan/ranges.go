package emojiscan

import (
	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/emojiscan/emojiscan/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Print the code-point ranges treated as emoji",
		Long:  "Print the active emoji range table: the built-in table, or the one configured through --ranges or the ranges key of a config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			t := s.cfg.Table
			if t.Empty() {
				t = emoji.DefaultTable
			}
			return report.PrintRanges(cmd.OutOrStdout(), t)
		},
	}
	rootCmd.AddCommand(cmd)
}
