package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emojiscan/emojiscan/internal/audit"
	"github.com/olekukonko/tablewriter"
)

// PrintHistory renders audit records, newest first, one row each. The
// index column is the one accepted by `history --delete`.
func PrintHistory(w io.Writer, records []audit.ScanRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No scans recorded")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "When", "Scanned", "Failed", "With emoji", "Runs", "Baselined", "Duration")
	for i, r := range records {
		if err := table.Append([]string{
			strconv.Itoa(i),
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.FilesScanned),
			strconv.Itoa(r.FilesFailed),
			strconv.Itoa(r.FilesWithEmoji),
			strconv.Itoa(r.EmojiRuns),
			strconv.Itoa(r.BaselinedRuns),
			r.Duration,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
