package report

import (
	"fmt"
	"io"

	"github.com/emojiscan/emojiscan/internal/emoji"
	"github.com/olekukonko/tablewriter"
)

// PrintRanges renders the merged intervals of t as a table with a sample
// glyph for each.
func PrintRanges(w io.Writer, t emoji.Table) error {
	table := tablewriter.NewWriter(w)
	table.Header("Start", "End", "Scalars", "Sample")
	total := 0
	for _, r := range t.Ranges() {
		total += r.Len()
		if err := table.Append([]string{
			fmt.Sprintf("U+%04X", r.Lo),
			fmt.Sprintf("U+%04X", r.Hi),
			fmt.Sprintf("%d", r.Len()),
			string(r.Lo),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d ranges, %d scalars\n", len(t.Ranges()), total)
	return err
}
