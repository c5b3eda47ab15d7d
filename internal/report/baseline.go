package report

import (
	"encoding/json"
	"os"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/emojiscan/emojiscan/internal/types"
)

// DefaultBaselineFile is the baseline path used by `baseline update`.
const DefaultBaselineFile = "emojiscan.baseline.json"

// Baseline holds accepted (path, emoji run) pairs as hashed keys.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return Baseline{Items: map[string]bool{}}, err
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, reports []types.FileReport) error {
	b := Baseline{Items: map[string]bool{}}
	for _, r := range reports {
		for _, e := range r.Emoji {
			b.Items[key(r, e)] = true
		}
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// Filter drops runs already accepted for the file. The returned report may
// have no runs left.
func (b Baseline) Filter(r types.FileReport) types.FileReport {
	if len(b.Items) == 0 {
		return r
	}
	out := types.FileReport{Path: r.Path, Rel: r.Rel}
	for _, e := range r.Emoji {
		if !b.Items[key(r, e)] {
			out.Emoji = append(out.Emoji, e)
		}
	}
	return out
}

// key hashes the root-relative path, falling back to Path for reports
// built without one.
func key(r types.FileReport, run string) string {
	path := r.Rel
	if path == "" {
		path = r.Path
	}
	return strconv.FormatUint(xxhash.Sum64String(path+"\x00"+run), 16)
}
