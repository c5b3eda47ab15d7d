package emojiscan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/emojiscan/emojiscan/internal/audit"
	"github.com/emojiscan/emojiscan/internal/config"
	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/emojiscan/emojiscan/internal/engine"
	"github.com/emojiscan/emojiscan/internal/report"
	"github.com/emojiscan/emojiscan/internal/types"
	"github.com/emojiscan/emojiscan/internal/update"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a directory tree for emoji",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)
	rootCmd.RunE = runScan
}

// settings is the resolved view of flags and config files for one run.
type settings struct {
	cfg      engine.Config
	noColor  bool
	baseline string
}

// loadSettings resolves CLI > local > global precedence into an engine
// config. A malformed config file or an invalid range is an error; a
// missing one is not.
func loadSettings(cmd *cobra.Command) (settings, error) {
	var s settings
	root := filepath.Clean(flagPath)

	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	} else if !errors.Is(err, config.ErrNotFound) {
		return s, err
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	} else if !errors.Is(err, config.ErrNotFound) {
		return s, err
	}
	fc := lcfg.Merge(gcfg)

	var table emoji.Table
	if specs := pickList(flagRanges, fc.Ranges); len(specs) > 0 {
		t, err := emoji.ParseTable(specs)
		if err != nil {
			return s, err
		}
		table = t
	}
	var skipDir func(string) bool
	if names := pickList(flagSkipDirs, fc.SkipDirs); len(names) > 0 {
		skipDir = engine.SkipDirNames(names...)
	}
	policy, err := engine.ParseErrorPolicy(pickString(flagOnError, fc.OnError, nil))
	if err != nil {
		return s, err
	}
	if flagMaxBytes < 0 {
		return s, fmt.Errorf("--max-bytes must not be negative (got %d)", flagMaxBytes)
	}

	s.cfg = engine.Config{
		Root:             root,
		Extensions:       pickList(flagExt, fc.Extensions),
		Table:            table,
		SkipDir:          skipDir,
		IncludeGlobs:     pickString(flagInclude, fc.Include, nil),
		ExcludeGlobs:     pickString(flagExclude, fc.Exclude, nil),
		MaxBytes:         pickInt64(flagMaxBytes, fc.MaxBytes, nil),
		DefaultExcludes:  pickBool(flagDefaultExcludes, fc.DefaultExcludes, nil),
		RespectGitignore: pickBool(flagGitignore, fc.Gitignore, nil),
		NoIgnoreFile:     flagNoIgnoreFile,
		OnReadError:      policy,
		Logger:           newLogger(cmd.ErrOrStderr()),
	}
	s.noColor = pickBool(flagNoColor, fc.NoColor, nil) || !isTerminal(cmd.OutOrStdout())
	s.baseline = pickString(flagBaseline, fc.Baseline, nil)
	return s, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runScan(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := s.cfg
	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()
	interactive := isTerminal(errw) && !flagQuiet

	if flagDryRun {
		n := 0
		for e := range engine.Files(cmd.Context(), cfg) {
			if cfg.Selects(e) {
				fmt.Fprintln(out, e.Path)
				n++
			}
		}
		if !flagQuiet {
			fmt.Fprintf(errw, "%d files would be scanned\n", n)
		}
		return nil
	}

	// the release lookup runs next to the scan and reports after it
	var (
		checks errgroup.Group
		latest string
		newer  bool
	)
	if interactive && !flagNoUpdateCheck {
		checks.Go(func() error {
			var err error
			latest, newer, err = update.Check(version, false)
			return err
		})
	}

	var baseline report.Baseline
	if s.baseline != "" {
		b, err := report.LoadBaseline(s.baseline)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("baseline %s: %w", s.baseline, err)
		}
		baseline = b
	}

	opts := report.PrintOptions{NoColor: s.noColor}
	var shown []types.FileReport
	cfg.Emit = func(r types.FileReport) {
		r = baseline.Filter(r)
		if len(r.Emoji) == 0 {
			return
		}
		shown = append(shown, r)
		report.PrintReport(out, r, opts)
	}

	// progress is drawn only when the report itself is redirected
	total := 0
	if interactive && !isTerminal(out) {
		total, _ = engine.CountTargets(cfg)
	}
	if total > 0 {
		done := 0
		cfg.Progress = func() {
			done++
			if done%10 == 0 || done == total {
				fmt.Fprintf(errw, "\r[%d/%d] %.0f%%", done, total, float64(done)/float64(total)*100)
			}
		}
	}

	res, err := engine.ScanWithStats(cmd.Context(), cfg)
	if total > 0 {
		fmt.Fprint(errw, "\r\033[K")
	}
	if err != nil {
		if errors.Is(err, engine.ErrRootUnreadable) {
			// already logged by the engine; nothing was scanned
			return nil
		}
		return fmt.Errorf("scan error: %w", err)
	}
	if flagAudit {
		rec := audit.CreateScanRecord(cfg.Root, res.Reports, shown, res.FilesScanned, len(res.Failures), res.Duration, s.baseline)
		if err := audit.NewAuditLog(cfg.Root).LogScan(rec); err != nil {
			cfg.Logger.Warn("audit log not written", "err", err)
		}
	}
	if err := checks.Wait(); err == nil && newer && latest != "" {
		fmt.Fprintf(errw, "(new version available: v%s)  run 'emojiscan update' to upgrade\n", latest)
	}
	if !flagQuiet {
		report.PrintSummary(errw, len(shown), report.PrintOptions{
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
			Failed:       len(res.Failures),
		})
	}
	return nil
}
