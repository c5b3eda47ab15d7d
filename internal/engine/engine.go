package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/emojiscan/emojiscan/internal/types"
	"github.com/go-git/go-billy/v5"
)

// ErrorPolicy decides what happens when a selected file cannot be loaded.
type ErrorPolicy string

const (
	// OnErrorSkip drops the file without any output.
	OnErrorSkip ErrorPolicy = "skip"
	// OnErrorLog drops the file and logs a warning.
	OnErrorLog ErrorPolicy = "log"
	// OnErrorAbort stops the scan with the read error. Oversized files are
	// still only skipped.
	OnErrorAbort ErrorPolicy = "abort"
)

// ParseErrorPolicy accepts skip, log or abort; empty means skip.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return OnErrorSkip, nil
	case OnErrorSkip, OnErrorLog, OnErrorAbort:
		return p, nil
	default:
		return "", fmt.Errorf("unknown on-error policy %q (want skip|log|abort)", s)
	}
}

// Config controls scanning behavior including scope, filters and policy.
type Config struct {
	Root string
	// Extensions are case-sensitive name suffixes; empty means DefaultExtensions.
	Extensions []string
	// Table is the emoji-like set; an empty table means emoji.DefaultTable.
	Table emoji.Table
	// SkipDir prunes directories by base name; nil means DefaultSkipDir.
	SkipDir func(name string) bool
	// FS is the filesystem walked; nil means the native filesystem,
	// chrooted at Root.
	FS billy.Filesystem
	// NoIgnoreFile disables the root's .emojiscanignore.
	NoIgnoreFile bool

	IncludeGlobs     string
	ExcludeGlobs     string
	MaxBytes         int64
	DefaultExcludes  bool
	RespectGitignore bool
	OnReadError      ErrorPolicy

	Logger *slog.Logger
	// Emit, when set, receives each non-empty report as soon as its file
	// has been matched.
	Emit     func(types.FileReport)
	Progress func()
}

func (cfg Config) extensions() []string {
	if len(cfg.Extensions) == 0 {
		return DefaultExtensions
	}
	return cfg.Extensions
}

func (cfg Config) table() emoji.Table {
	if cfg.Table.Empty() {
		return emoji.DefaultTable
	}
	return cfg.Table
}

func (cfg Config) skipDir() func(string) bool {
	if cfg.SkipDir == nil {
		return DefaultSkipDir
	}
	return cfg.SkipDir
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

// Selects reports whether the walked entry e would be opened by a scan.
func (cfg Config) Selects(e Entry) bool {
	if !HasExtension(e.Name, cfg.extensions()) {
		return false
	}
	if cfg.DefaultExcludes && isDefaultFileExcluded(e.Name) {
		return false
	}
	return allowedByGlobs(e.Rel, cfg)
}

// Result contains the per-file reports and basic scan statistics.
type Result struct {
	Reports      []types.FileReport
	FilesSeen    int
	FilesScanned int
	Failures     []types.ReadResult
	Duration     time.Duration
}

// Scan runs a scan and returns only the reports (without stats).
func Scan(ctx context.Context, cfg Config) ([]types.FileReport, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Reports, nil
}

// ScanWithStats walks cfg.Root and matches every selected file, one file
// at a time. A root that cannot be walked yields an empty result wrapped
// around ErrRootUnreadable.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.OnReadError == "" {
		cfg.OnReadError = OnErrorSkip
	}
	log := cfg.logger()
	tbl := cfg.table()
	started := time.Now()

	t, err := cfg.openTree()
	if err == nil {
		err = cfg.walkTree(ctx, t, cfg.loadIgnore(t), func(e Entry) error {
			result.FilesSeen++
			if !cfg.Selects(e) {
				return nil
			}
			rr := ReadFile(t.fs, t.path(e.Rel), cfg.MaxBytes)
			rr.Path = e.Path
			if !rr.OK() {
				result.Failures = append(result.Failures, rr)
				return handleFailure(cfg, log, rr)
			}
			result.FilesScanned++
			if cfg.Progress != nil {
				cfg.Progress()
			}
			runs := tbl.Distinct(rr.Content)
			if len(runs) == 0 {
				return nil
			}
			rep := types.FileReport{Path: e.Path, Rel: filepath.ToSlash(e.Rel), Emoji: runs}
			result.Reports = append(result.Reports, rep)
			if cfg.Emit != nil {
				cfg.Emit(rep)
			}
			return nil
		})
	}
	result.Duration = time.Since(started)
	if err != nil {
		if errors.Is(err, ErrRootUnreadable) {
			log.Warn("nothing scanned", "root", cfg.Root, "err", err)
		}
		return result, err
	}
	log.Debug("scan complete", "root", cfg.Root, "seen", result.FilesSeen, "scanned", result.FilesScanned,
		"with_emoji", len(result.Reports), "failed", len(result.Failures), "duration", result.Duration)
	return result, nil
}

func handleFailure(cfg Config, log *slog.Logger, rr types.ReadResult) error {
	switch cfg.OnReadError {
	case OnErrorLog:
		log.Warn("skipping file", "path", rr.Path, "reason", string(rr.Reason), "err", rr.Err)
	case OnErrorAbort:
		if rr.Reason == types.ReasonTooLarge {
			log.Debug("skipping file", "path", rr.Path, "reason", string(rr.Reason))
			return nil
		}
		return fmt.Errorf("%s %s: %w", rr.Reason, rr.Path, rr.Err)
	default:
		log.Debug("skipping file", "path", rr.Path, "reason", string(rr.Reason), "err", rr.Err)
	}
	return nil
}
