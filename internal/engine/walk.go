package engine

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/emojiscan/emojiscan/internal/ignore"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// ErrRootUnreadable is returned when the scan root is missing, unreadable
// or not a directory.
var ErrRootUnreadable = errors.New("scan root unreadable")

// Entry is one regular file reached by the walker.
type Entry struct {
	Dir  string // directory as reached from Root
	Name string // base name
	Path string // Root joined with Rel
	Rel  string // path relative to Root
	Size int64
}

var errStopWalk = errors.New("stop walk")

const maxLinkHops = 8

// tree is where a walk of cfg.Root actually happens: a filesystem and the
// directory inside it that stands for the root.
type tree struct {
	fs   billy.Filesystem
	base string
}

func (t tree) path(rel string) string { return t.fs.Join(t.base, rel) }

// openTree resolves cfg.Root. The native filesystem is chrooted at the
// root with links evaluated, so roots like ../site or a link to a
// directory walk the same as a plain directory.
func (cfg Config) openTree() (tree, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	var t tree
	if cfg.FS == nil {
		dir, err := filepath.EvalSymlinks(root)
		if err != nil {
			return tree{}, fmt.Errorf("%w: %v", ErrRootUnreadable, err)
		}
		t = tree{fs: osfs.New(dir), base: "."}
	} else {
		t = tree{fs: cfg.FS, base: resolveLinks(cfg.FS, root)}
	}
	st, err := t.fs.Stat(t.base)
	if err != nil {
		return tree{}, fmt.Errorf("%w: %v", ErrRootUnreadable, err)
	}
	if !st.IsDir() {
		return tree{}, fmt.Errorf("%w: %s is not a directory", ErrRootUnreadable, root)
	}
	return t, nil
}

// resolveLinks follows p while it names a symlink inside fsys.
func resolveLinks(fsys billy.Filesystem, p string) string {
	for range maxLinkHops {
		fi, err := fsys.Lstat(p)
		if err != nil || fi.Mode()&os.ModeSymlink == 0 {
			return p
		}
		target, err := fsys.Readlink(p)
		if err != nil {
			return p
		}
		if !filepath.IsAbs(target) {
			target = fsys.Join(filepath.Dir(p), target)
		}
		p = target
	}
	return p
}

// Walk visits every regular file under cfg.Root in directory order and
// calls handle for each one. Directories matched by cfg.SkipDir, the
// ignore matcher, or the default excludes are pruned before descent, so
// nothing beneath them is visited; ignored files are dropped. Unreadable
// subdirectories and entries are skipped; only a bad root is reported, as
// ErrRootUnreadable.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, handle func(Entry) error) error {
	t, err := cfg.openTree()
	if err != nil {
		return err
	}
	return cfg.walkTree(ctx, t, ign, handle)
}

func (cfg Config) walkTree(ctx context.Context, t tree, ign ignore.Matcher, handle func(Entry) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	skipDir := cfg.skipDir()
	root := cfg.Root
	if root == "" {
		root = "."
	}

	err := util.Walk(t.fs, t.base, func(p string, info os.FileInfo, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil || info == nil {
			cfg.logger().Debug("walk: skipping entry", "path", p, "err", err)
			return nil
		}
		if p == t.base {
			return nil
		}
		rel, _ := filepath.Rel(t.base, p)
		if info.IsDir() {
			name := info.Name()
			if skipDir(name) {
				return filepath.SkipDir
			}
			if cfg.DefaultExcludes && isDefaultDirExcluded(name) {
				return filepath.SkipDir
			}
			if ign.MatchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			// follow links to files, never links to directories
			target, serr := t.fs.Stat(p)
			if serr != nil || !target.Mode().IsRegular() {
				return nil
			}
			info = target
		}
		if !info.Mode().IsRegular() || ign.Match(rel) {
			return nil
		}
		path := filepath.Join(root, rel)
		return handle(Entry{
			Dir:  filepath.Dir(path),
			Name: filepath.Base(path),
			Path: path,
			Rel:  rel,
			Size: info.Size(),
		})
	})
	if errors.Is(err, errStopWalk) {
		return nil
	}
	return err
}

// Files returns a lazy sequence of the regular files under cfg.Root. Each
// iteration re-walks the tree. Errors, including a bad root, end the
// sequence silently.
func Files(ctx context.Context, cfg Config) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		t, err := cfg.openTree()
		if err != nil {
			return
		}
		_ = cfg.walkTree(ctx, t, cfg.loadIgnore(t), func(e Entry) error {
			if !yield(e) {
				return errStopWalk
			}
			return nil
		})
	}
}

// Targets lists the files a scan with cfg would open, in walk order.
func Targets(ctx context.Context, cfg Config) ([]Entry, error) {
	t, err := cfg.openTree()
	if err != nil {
		return nil, err
	}
	var out []Entry
	err = cfg.walkTree(ctx, t, cfg.loadIgnore(t), func(e Entry) error {
		if cfg.Selects(e) {
			out = append(out, e)
		}
		return nil
	})
	return out, err
}

// CountTargets returns the number of files a scan with cfg would open.
func CountTargets(cfg Config) (int, error) {
	ts, err := Targets(context.Background(), cfg)
	return len(ts), err
}

func (cfg Config) loadIgnore(t tree) ignore.Matcher {
	ign, err := ignore.LoadFS(t.fs, t.base, !cfg.NoIgnoreFile, cfg.RespectGitignore)
	if err != nil {
		cfg.logger().Warn("ignore patterns not loaded", "root", cfg.Root, "err", err)
	}
	return ign
}
