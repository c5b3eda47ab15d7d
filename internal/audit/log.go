package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emojiscan/emojiscan/internal/types"
)

// FileName is the audit log name, kept under .git when the root has one.
const FileName = "emojiscan_audit.jsonl"

const (
	maxTopFiles    = 10
	maxRecordBytes = 4 << 20
)

type ScanRecord struct {
	Timestamp      time.Time     `json:"timestamp"`
	ScanID         string        `json:"scan_id"`
	Root           string        `json:"root"`
	FilesScanned   int           `json:"files_scanned"`
	FilesFailed    int           `json:"files_failed"`
	FilesWithEmoji int           `json:"files_with_emoji"`
	EmojiRuns      int           `json:"emoji_runs"`
	BaselinedRuns  int           `json:"baselined_runs"`
	Duration       string        `json:"duration"`
	BaselineFile   string        `json:"baseline_file,omitempty"`
	TopFiles       []FileSummary `json:"top_files,omitempty"`
}

type FileSummary struct {
	Path  string   `json:"path"`
	Emoji []string `json:"emoji"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, "."+FileName)
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, FileName)
	}
	return &AuditLog{logPath: logPath}
}

// Path is where records are appended.
func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns every decodable record, newest first. Lines that do
// not decode are skipped.
func (a *AuditLog) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var record ScanRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", record.Timestamp.UnixNano())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at index, counted newest first as
// returned by LoadHistory.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}

	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// CreateScanRecord summarises one scan. all holds every report the scan
// produced; shown holds what remained after baseline filtering.
func CreateScanRecord(
	root string,
	all []types.FileReport,
	shown []types.FileReport,
	filesScanned int,
	filesFailed int,
	duration time.Duration,
	baselineFile string,
) ScanRecord {
	total, visible := countRuns(all), countRuns(shown)

	top := make([]FileSummary, 0, maxTopFiles)
	for i, r := range shown {
		if i >= maxTopFiles {
			break
		}
		top = append(top, FileSummary{Path: r.Path, Emoji: r.Emoji})
	}

	return ScanRecord{
		Timestamp:      time.Now(),
		Root:           root,
		FilesScanned:   filesScanned,
		FilesFailed:    filesFailed,
		FilesWithEmoji: len(shown),
		EmojiRuns:      visible,
		BaselinedRuns:  total - visible,
		Duration:       duration.String(),
		BaselineFile:   baselineFile,
		TopFiles:       top,
	}
}

func countRuns(reports []types.FileReport) int {
	n := 0
	for _, r := range reports {
		n += len(r.Emoji)
	}
	return n
}
