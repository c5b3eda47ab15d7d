package emojiscan

import (
	"fmt"
	"runtime"

	"github.com/emojiscan/emojiscan/internal/update"
	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the emojiscan version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "emojiscan %s (%s, %s/%s)\n", currentVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if flagNoUpdateCheck || !isTerminal(out) {
				return
			}
			if latest, newer, _ := update.Check(version, false); newer {
				fmt.Fprintf(out, "new version available: v%s\n", latest)
			}
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update emojiscan to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, changed, err := selfUpdate()
			if err != nil {
				return fmt.Errorf("self-update: %w", err)
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "emojiscan v%s is up to date\n", v)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated to v%s; re-run your command\n", v)
			return nil
		},
	}

	rootCmd.AddCommand(versionCmd, updateCmd)
}
