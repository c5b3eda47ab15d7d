package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/emojiscan/emojiscan/internal/types"
)

var (
	fileStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle = lipgloss.NewStyle().Faint(true)
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	Failed       int
}

// PrintReport writes one block for r: the file line, then one line per
// distinct emoji run. Reports without runs print nothing.
func PrintReport(w io.Writer, r types.FileReport, opts PrintOptions) {
	if len(r.Emoji) == 0 {
		return
	}
	fileLabel, emojiLabel, path := "File:", "Emoji:", r.Path
	if !opts.NoColor {
		fileLabel = labelStyle.Render(fileLabel)
		emojiLabel = labelStyle.Render(emojiLabel)
		path = fileStyle.Render(path)
	}
	fmt.Fprintf(w, "%s %s\n", fileLabel, path)
	for _, e := range r.Emoji {
		fmt.Fprintf(w, "  %s %s\n", emojiLabel, e)
	}
}

// PrintText writes every report in order.
func PrintText(w io.Writer, reports []types.FileReport, opts PrintOptions) {
	for _, r := range reports {
		PrintReport(w, r, opts)
	}
}

// PrintSummary writes the scan footer. It is meant for stderr so that stdout
// carries only report blocks.
func PrintSummary(w io.Writer, withEmoji int, opts PrintOptions) {
	fmt.Fprintln(w)
	if withEmoji == 0 {
		fmt.Fprintln(w, "No emoji found")
	} else {
		fmt.Fprintf(w, "Files with emoji: %d\n", withEmoji)
	}
	fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	if opts.Failed > 0 {
		fmt.Fprintf(w, "Files skipped (unreadable): %d\n", opts.Failed)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}
