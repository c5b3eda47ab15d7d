package emojiscan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emojiscan/emojiscan/internal/audit"
	"github.com/emojiscan/emojiscan/internal/report"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyDelete int
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show scans recorded with --audit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := audit.NewAuditLog(filepath.Clean(flagPath))
			if historyDelete >= 0 {
				if err := log.DeleteRecord(historyDelete); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", historyDelete)
				return nil
			}
			records, err := log.LoadHistory()
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if historyLimit > 0 && len(records) > historyLimit {
				records = records[:historyLimit]
			}
			return report.PrintHistory(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().IntVar(&historyLimit, "limit", 20, "show at most N records (0 = all)")
	cmd.Flags().IntVar(&historyDelete, "delete", -1, "delete the record with this index")
	rootCmd.AddCommand(cmd)
}
