package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
	"github.com/emojiscan/emojiscan/internal/config"
)

// RepoSlug is the GitHub owner/name releases are published under.
const RepoSlug = "emojiscan/emojiscan"

const (
	stateFile    = "update.json"
	stateTTL     = 24 * time.Hour
	fetchTimeout = 2 * time.Second
)

// latestURL is a var so tests can point it at a local server.
var latestURL = "https://api.github.com/repos/" + RepoSlug + "/releases/latest"

// state records the last release lookup next to the global config file.
type state struct {
	CheckedAt time.Time `json:"checked_at"`
	Latest    string    `json:"latest"`
}

func statePath() string {
	p := config.GlobalPath()
	if p == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(p), stateFile)
}

// readState returns the zero state when nothing usable is on disk.
func readState() state {
	var s state
	if p := statePath(); p != "" {
		if b, err := os.ReadFile(p); err == nil {
			_ = json.Unmarshal(b, &s)
		}
	}
	return s
}

func (s state) write() error {
	p := statePath()
	if p == "" {
		return errors.New("no config dir")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

func (s state) stale(now time.Time) bool {
	return s.Latest == "" || now.Sub(s.CheckedAt) > stateTTL
}

// fetchLatest asks the releases API for the newest tag.
func fetchLatest(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "emojiscan-updater")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}
	var rel struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", fmt.Errorf("release lookup: %w", err)
	}
	if rel.TagName != "" {
		return rel.TagName, nil
	}
	return rel.Name, nil
}

// Check reports the latest published version and whether it is newer than
// current. Lookups are remembered for a day; nothing is fetched in CI or
// when noNetwork is set.
func Check(current string, noNetwork bool) (string, bool, error) {
	if noNetwork || os.Getenv("CI") != "" {
		return "", false, nil
	}
	s := readState()
	if now := time.Now(); s.stale(now) {
		if v, err := fetchLatest(context.Background()); err == nil {
			s = state{CheckedAt: now, Latest: normalize(v)}
			_ = s.write()
		}
	}
	current = normalize(current)
	if s.Latest == "" || current == "" {
		return s.Latest, false, nil
	}
	return s.Latest, compare(s.Latest, current) > 0, nil
}

func normalize(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// compare orders two versions; unparseable ones sort as 0.0.0.
func compare(a, b string) int {
	return parse(a).Compare(parse(b))
}

func parse(v string) semver.Version {
	sv, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}
	}
	return sv
}
