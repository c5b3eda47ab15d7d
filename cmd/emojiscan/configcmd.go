package emojiscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/emojiscan/emojiscan/internal/config"
	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/emojiscan/emojiscan/internal/engine"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput          string
	cfgExtensions      string
	cfgWithRanges      bool
	cfgMaxBytes        int64
	cfgOnError         string
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgGitignore       bool
	cfgForce           bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .emojiscan.yml with the selected options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", config.LocalNames[0], "output file path")
	initCmd.Flags().StringVar(&cfgExtensions, "extensions", strings.Join(engine.DefaultExtensions, ","), "comma-separated file suffixes")
	initCmd.Flags().BoolVar(&cfgWithRanges, "with-ranges", false, "write the built-in range table so it can be edited")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	initCmd.Flags().StringVar(&cfgOnError, "on-error", string(engine.OnErrorSkip), "unreadable file policy: skip|log|abort")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", false, "enable default ignore patterns")
	initCmd.Flags().BoolVar(&cfgGitignore, "gitignore", false, "honour .gitignore files")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	policy, err := engine.ParseErrorPolicy(cfgOnError)
	if err != nil {
		return err
	}
	fc := config.FileConfig{
		Extensions:      splitList(cfgExtensions),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
		Gitignore:       boolPtr(cfgGitignore),
		OnError:         strPtr(string(policy)),
		NoColor:         boolPtr(cfgNoColor),
	}
	if cfgWithRanges {
		for _, r := range emoji.DefaultRanges() {
			fc.Ranges = append(fc.Ranges, formatRange(r))
		}
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

// formatRange formats r the way ParseRange reads it back.
func formatRange(r emoji.Range) string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%04X", r.Lo)
	}
	return fmt.Sprintf("%04X-%04X", r.Lo, r.Hi)
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
