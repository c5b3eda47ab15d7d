package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emojiscan/emojiscan/internal/ignore"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memTree(t *testing.T, files map[string]string) Config {
	t.Helper()
	fs := memfs.New()
	for name, body := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(body), 0644))
	}
	return Config{Root: "site", FS: fs}
}

func walkPaths(t *testing.T, cfg Config, ign ignore.Matcher) []string {
	t.Helper()
	var got []string
	err := Walk(context.Background(), cfg, ign, func(e Entry) error {
		got = append(got, filepath.ToSlash(e.Path))
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestWalk_SkipsMetadataDirAtAnyDepth(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/index.html":              "x",
		"site/.git/ignored.html":       "🎉",
		"site/.git/objects/deep/a.js":  "🎉",
		"site/sub/.git/nested.css":     "🎉",
		"site/sub/page.html":           "x",
		"site/.gitkeep/not-pruned.txt": "x",
	})
	got := walkPaths(t, cfg, ignore.Matcher{})
	assert.ElementsMatch(t, []string{
		"site/index.html",
		"site/sub/page.html",
		"site/.gitkeep/not-pruned.txt",
	}, got)
}

func TestWalk_OnlyMetadataDirYieldsNothing(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/.git/a.html":         "🎉",
		"site/.git/b/c/d/e/f.html": "🎉",
	})
	assert.Empty(t, walkPaths(t, cfg, ignore.Matcher{}))
}

func TestWalk_CustomSkipDirPredicate(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/.git/a.html":  "x",
		"site/.hg/b.html":   "x",
		"site/keep/c.html":  "x",
		"site/cache/d.html": "x",
	})
	cfg.SkipDir = SkipDirNames(".hg", "cache")
	got := walkPaths(t, cfg, ignore.Matcher{})
	// a custom predicate replaces the default, so .git is walked here
	assert.ElementsMatch(t, []string{"site/.git/a.html", "site/keep/c.html"}, got)
}

func TestWalk_DefaultExcludesAndIgnore(t *testing.T) {
	cfg := memTree(t, map[string]string{
		"site/node_modules/lib/x.js": "x",
		"site/generated/y.js":        "x",
		"site/app.js":                "x",
	})
	ign, err := ignore.Parse(stringsReader("generated/\n"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"site/node_modules/lib/x.js", "site/app.js"}, walkPaths(t, cfg, ign))

	cfg.DefaultExcludes = true
	assert.Equal(t, []string{"site/app.js"}, walkPaths(t, cfg, ign))
}

func TestWalk_EntryFields(t *testing.T) {
	cfg := memTree(t, map[string]string{"site/a/b/c.css": "body{}"})
	var got []Entry
	require.NoError(t, Walk(context.Background(), cfg, ignore.Matcher{}, func(e Entry) error {
		got = append(got, e)
		return nil
	}))
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join("site", "a", "b"), got[0].Dir)
	assert.Equal(t, "c.css", got[0].Name)
	assert.Equal(t, filepath.Join("a", "b", "c.css"), got[0].Rel)
	assert.EqualValues(t, 6, got[0].Size)
}

func TestWalk_MissingRoot(t *testing.T) {
	cfg := Config{Root: filepath.Join(t.TempDir(), "nope")}
	called := false
	err := Walk(context.Background(), cfg, ignore.Matcher{}, func(Entry) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, ErrRootUnreadable))
	assert.False(t, called)
}

func TestWalk_RootIsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, os.WriteFile(p, []byte("🎉"), 0644))
	err := Walk(context.Background(), Config{Root: p}, ignore.Matcher{}, func(Entry) error { return nil })
	assert.ErrorIs(t, err, ErrRootUnreadable)
}

func TestWalk_HandleErrorStopsWalk(t *testing.T) {
	cfg := memTree(t, map[string]string{"site/a.js": "", "site/b.js": ""})
	boom := errors.New("boom")
	n := 0
	err := Walk(context.Background(), cfg, ignore.Matcher{}, func(Entry) error {
		n++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
}

func TestWalk_CancelledContext(t *testing.T) {
	cfg := memTree(t, map[string]string{"site/a.js": ""})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Walk(ctx, cfg, ignore.Matcher{}, func(Entry) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_OnDisk(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(name, content string) {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("index.html", "x")
	mustWrite(".git/HEAD", "ref: refs/heads/main")
	mustWrite("css/site.css", "x")

	var got []string
	err := Walk(nil, Config{Root: dir}, ignore.Matcher{}, func(e Entry) error {
		got = append(got, e.Rel)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", filepath.Join("css", "site.css")}, got)
}

func TestFiles_LazyAndRestartable(t *testing.T) {
	cfg := memTree(t, map[string]string{"site/a.js": "", "site/b.js": "", "site/c.js": ""})
	seq := Files(context.Background(), cfg)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	total := 0
	for range seq {
		total++
	}
	assert.Equal(t, 3, total)
}

func TestFiles_BadRootIsEmpty(t *testing.T) {
	cfg := Config{Root: filepath.Join(t.TempDir(), "missing")}
	for range Files(context.Background(), cfg) {
		t.Fatal("expected no entries")
	}
}

func TestWalk_ParentRelativeRootOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "work"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site", "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "index.html"), []byte("hi 🎉"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site", "css", "a.css"), []byte("x"), 0644))
	t.Chdir(filepath.Join(dir, "work"))

	root := filepath.Join("..", "site")
	var got []string
	err := Walk(context.Background(), Config{Root: root}, ignore.Matcher{}, func(e Entry) error {
		got = append(got, e.Path)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "index.html"),
		filepath.Join(root, "css", "a.css"),
	}, got)

	reps, err := Scan(context.Background(), Config{Root: root})
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, filepath.Join(root, "index.html"), reps[0].Path)
	assert.Equal(t, []string{"🎉"}, reps[0].Emoji)
}

func TestWalk_SymlinkedRootOnDisk(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "index.html"), []byte("hi 🎉"), 0644))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	reps, err := Scan(context.Background(), Config{Root: link})
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, filepath.Join(link, "index.html"), reps[0].Path)

	n := 0
	for range Files(context.Background(), Config{Root: link}) {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestWalk_SymlinkedRootInMemory(t *testing.T) {
	cfg := memTree(t, map[string]string{"real/a.js": "🚀"})
	require.NoError(t, cfg.FS.Symlink("real", "site"))

	assert.Equal(t, []string{filepath.Join("site", "a.js")}, walkPaths(t, cfg, ignore.Matcher{}))
}
