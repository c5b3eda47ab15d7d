package core

import (
	"context"
	"iter"

	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/emojiscan/emojiscan/internal/engine"
	"github.com/emojiscan/emojiscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Entry = engine.Entry
type FileReport = types.FileReport
type Range = emoji.Range
type Table = emoji.Table

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config) ([]FileReport, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats runs a scan and returns reports with timing and counts.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// Files lazily yields the regular files a walk of cfg.Root reaches.
func Files(ctx context.Context, cfg Config) iter.Seq[Entry] {
	return engine.Files(ctx, cfg)
}

// Match returns the distinct emoji runs in text using the built-in table.
func Match(text string) []string { return emoji.Distinct(text) }

// NewTable builds a custom table for Config.Table.
func NewTable(rs ...Range) Table { return emoji.NewTable(rs...) }
