package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emojiscan/emojiscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseline_SaveLoadFilter(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultBaselineFile)
	require.NoError(t, SaveBaseline(p, []types.FileReport{
		{Path: "a.js", Emoji: []string{"🚀", "✅"}},
	}))

	b, err := LoadBaseline(p)
	require.NoError(t, err)
	assert.Len(t, b.Items, 2)

	got := b.Filter(types.FileReport{Path: "a.js", Emoji: []string{"🚀", "🎉"}})
	assert.Equal(t, []string{"🎉"}, got.Emoji)

	// same run in another file is not covered
	got = b.Filter(types.FileReport{Path: "b.js", Emoji: []string{"🚀"}})
	assert.Equal(t, []string{"🚀"}, got.Emoji)

	got = b.Filter(types.FileReport{Path: "a.js", Emoji: []string{"✅"}})
	assert.Empty(t, got.Emoji)
}

func TestLoadBaseline_Missing(t *testing.T) {
	b, err := LoadBaseline(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
	assert.NotNil(t, b.Items)
	r := types.FileReport{Path: "x", Emoji: []string{"🎉"}}
	assert.Equal(t, r, b.Filter(r))
}

func TestLoadBaseline_Corrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{nope"), 0644))
	b, err := LoadBaseline(p)
	assert.Error(t, err)
	assert.Empty(t, b.Items)
}

func TestBaseline_KeysOnRelativePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultBaselineFile)
	require.NoError(t, SaveBaseline(p, []types.FileReport{
		{Path: filepath.Join("site", "css", "a.css"), Rel: "css/a.css", Emoji: []string{"✅"}},
	}))
	b, err := LoadBaseline(p)
	require.NoError(t, err)

	abs := types.FileReport{Path: "/srv/www/site/css/a.css", Rel: "css/a.css", Emoji: []string{"✅", "🎉"}}
	got := b.Filter(abs)
	assert.Equal(t, []string{"🎉"}, got.Emoji)
	assert.Equal(t, abs.Path, got.Path)
}
