package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func targetPaths(t *testing.T, cfg Config) []string {
	t.Helper()
	ts, err := Targets(context.Background(), cfg)
	require.NoError(t, err)
	var out []string
	for _, e := range ts {
		out = append(out, e.Rel)
	}
	return out
}

func TestTargets_ExtensionFilter(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/x.txt":   "🎉",
		"site/x.html":  "🎉",
		"site/y.css":   "",
		"site/z.js":    "",
		"site/Z.JS":    "",
		"site/w.jsx":   "",
		"site/v.htmlx": "",
	})
	assert.ElementsMatch(t, []string{"x.html", "y.css", "z.js"}, targetPaths(t, cfg))

	cfg.Extensions = []string{".txt"}
	assert.Equal(t, []string{"x.txt"}, targetPaths(t, cfg))
}

func TestTargets_WithIncludeExcludeGlobs(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/a.js":          "",
		"site/lib/b.js":      "",
		"site/lib/c.css":     "",
		"site/docs/d.html":   "",
		"site/lib/e.min.js":  "",
		"site/lib/f.map":     "",
		"site/docs/sub/g.js": "",
	})

	cfg.IncludeGlobs = "lib/**"
	assert.ElementsMatch(t, []string{"lib/b.js", "lib/c.css", "lib/e.min.js"}, targetPaths(t, cfg))

	cfg.IncludeGlobs = ""
	cfg.ExcludeGlobs = "**/docs/**, *.css"
	assert.ElementsMatch(t, []string{"a.js", "lib/b.js", "lib/e.min.js"}, targetPaths(t, cfg))

	cfg.ExcludeGlobs = ""
	cfg.DefaultExcludes = true
	assert.NotContains(t, targetPaths(t, cfg), "lib/e.min.js")
}

func TestCountTargets(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/a.js":             "",
		"site/b.txt":            "",
		"site/.git/c.js":        "",
		"site/.emojiscanignore": "skip.js\n",
		"site/skip.js":          "",
	})
	n, err := CountTargets(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHasExtension(t *testing.T) {
	exts := []string{".html", ".css", ".js"}
	assert.True(t, HasExtension("index.html", exts))
	assert.True(t, HasExtension("a.min.js", exts))
	assert.False(t, HasExtension("index.HTML", exts))
	assert.False(t, HasExtension("x.txt", exts))
	assert.False(t, HasExtension("html", exts))
	assert.False(t, HasExtension("x.js", []string{""}))
}

func TestAllowedByGlobs_Basename(t *testing.T) {
	cfg := Config{IncludeGlobs: "*.js"}
	assert.True(t, allowedByGlobs("deep/dir/a.js", cfg))
	assert.False(t, allowedByGlobs("deep/dir/a.css", cfg))
}
