package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emojiscan/emojiscan/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendIgnore_IdempotentAndCreates(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ignore.FileName)
	added, err := AppendIgnore(dir, "dist/")
	require.NoError(t, err)
	assert.True(t, added)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "dist/\n", string(b))

	added, err = AppendIgnore(dir, "dist/")
	require.NoError(t, err)
	assert.False(t, added)
	b, _ = os.ReadFile(p)
	assert.Equal(t, 1, strings.Count(string(b), "dist/"))
}

func TestAppendIgnore_FixesMissingNewline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ignore.FileName)
	require.NoError(t, os.WriteFile(p, []byte("vendor/"), 0o644))
	_, err := AppendIgnore(dir, "*.min.js")
	require.NoError(t, err)
	b, _ := os.ReadFile(p)
	assert.Equal(t, "vendor/\n*.min.js\n", string(b))

	m, err := ignore.Load(p)
	require.NoError(t, err)
	assert.True(t, m.Match("app.min.js"))
	assert.True(t, m.MatchDir("vendor"))
}

func TestDefaultGeneratedIgnores(t *testing.T) {
	items := DefaultGeneratedIgnores()
	assert.Contains(t, items, "*.min.js")
	assert.Contains(t, items, "node_modules/")
}
