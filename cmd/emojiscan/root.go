package emojiscan

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	flagPath            string
	flagExt             string
	flagRanges          string
	flagSkipDirs        string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagDefaultExcludes bool
	flagGitignore       bool
	flagOnError         string
	flagBaseline        string
	flagNoColor         bool
	flagQuiet           bool
	flagVerbose         bool
	flagNoUpdateCheck   bool
	flagDryRun          bool
	flagAudit           bool
	flagNoIgnoreFile    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the emojiscan CLI. Run without a
// subcommand it behaves like `emojiscan scan`.
var rootCmd = &cobra.Command{
	Use:   "emojiscan",
	Short: "Find emoji in web source files",
	Long: `emojiscan walks a directory tree and reports every .html, .css and .js file
that contains emoji, listing the distinct emoji runs in each.

Patterns in a .emojiscanignore file at the scan root (gitignore syntax) are
always honoured; pass --no-ignore-file to scan everything. .gitignore files
are only read with --gitignore.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the emojiscan CLI. It should be called by the main package.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPath, "path", "p", ".", "directory to scan")
	pf.StringVar(&flagExt, "ext", "", "comma-separated file suffixes to inspect (default .html,.css,.js)")
	pf.StringVar(&flagRanges, "ranges", "", "comma-separated code-point ranges replacing the built-in table (e.g. 1F600-1F64F,2702)")
	pf.StringVar(&flagSkipDirs, "skip-dirs", "", "comma-separated directory names never descended into (default .git)")
	pf.StringVar(&flagInclude, "include", "", "comma-separated include globs")
	pf.StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	pf.Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	pf.BoolVar(&flagDefaultExcludes, "default-excludes", false, "skip node_modules, dist, minified bundles and similar")
	pf.BoolVar(&flagNoIgnoreFile, "no-ignore-file", false, "do not read .emojiscanignore at the scan root")
	pf.BoolVar(&flagGitignore, "gitignore", false, "also honour .gitignore files")
	pf.StringVar(&flagOnError, "on-error", "", "unreadable file policy: skip|log|abort (default skip)")
	pf.StringVar(&flagBaseline, "baseline", "", "hide emoji already recorded in this baseline file")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "print report blocks only, no summary")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log debug details to stderr")
	pf.BoolVar(&flagDryRun, "dry-run", false, "list the files that would be scanned without opening them")
	pf.BoolVar(&flagAudit, "audit", false, "append a summary of this scan to the audit log (see 'emojiscan history')")
	pf.BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
