package core

import (
	"encoding/json"
	"io"
)

// MarshalReports pretty-prints reports as JSON for programs embedding the
// scanner; the CLI itself only prints text.
func MarshalReports(w io.Writer, reports []FileReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// UnmarshalReports decodes reports JSON, useful for ingestion tests.
func UnmarshalReports(r io.Reader) ([]FileReport, error) {
	var rs []FileReport
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}
