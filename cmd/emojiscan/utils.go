package emojiscan

import (
	"runtime/debug"
	"strings"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/emojiscan/emojiscan/internal/update"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// currentVersion is the build version, falling back to the VCS revision
// recorded by the toolchain when the version was blanked at link time.
func currentVersion() string {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	return v
}

// selfUpdate replaces the running binary with the latest GitHub release.
// It returns the version now installed and whether it changed.
func selfUpdate() (string, bool, error) {
	ver, err := semver.ParseTolerant(currentVersion())
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	cur := semver3.MustParse(ver.String())
	latest, err := selfupdate.UpdateSelf(cur, update.RepoSlug)
	if err != nil {
		return "", false, err
	}
	return latest.Version.String(), !latest.Version.Equals(cur), nil
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickList prefers a non-empty comma-separated CLI value over the file list.
func pickList(cli string, file []string) []string {
	if cli != "" {
		return splitList(cli)
	}
	return file
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
