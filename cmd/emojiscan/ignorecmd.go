package emojiscan

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/emojiscan/emojiscan/internal/files"
	"github.com/emojiscan/emojiscan/internal/ignore"
	"github.com/spf13/cobra"
)

var ignoreGenerated bool

func init() {
	cmd := &cobra.Command{Use: "ignore", Short: "Manage the " + ignore.FileName + " file"}

	add := &cobra.Command{
		Use:   "add [PATTERN...]",
		Short: "Append gitignore-style patterns to " + ignore.FileName,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if ignoreGenerated {
				patterns = append(patterns, files.DefaultGeneratedIgnores()...)
			}
			if len(patterns) == 0 {
				return errors.New("no patterns given (pass PATTERN or --generated)")
			}
			root := filepath.Clean(flagPath)
			for _, p := range patterns {
				added, err := files.AppendIgnore(root, p)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintln(cmd.OutOrStdout(), "added", p)
				}
			}
			return nil
		},
	}
	add.Flags().BoolVar(&ignoreGenerated, "generated", false, "also add common generated-asset patterns")

	cmd.AddCommand(add)
	rootCmd.AddCommand(cmd)
}
