// Package ignore matches root-relative paths against gitignore-style
// patterns read from .emojiscanignore and, optionally, .gitignore files.
package ignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// FileName is the per-tree ignore file read from the scan root.
const FileName = ".emojiscanignore"

// Matcher reports whether a path is ignored. The zero value ignores nothing.
type Matcher struct {
	m gitignore.Matcher
	n int
}

// Len is the number of patterns loaded.
func (m Matcher) Len() int { return m.n }

// Match reports whether the file at slash- or OS-separated rel is ignored.
func (m Matcher) Match(rel string) bool { return m.match(rel, false) }

// MatchDir is Match for directories, so that "dir/" patterns apply.
func (m Matcher) MatchDir(rel string) bool { return m.match(rel, true) }

func (m Matcher) match(rel string, isDir bool) bool {
	if m.m == nil || rel == "" || rel == "." {
		return false
	}
	return m.m.Match(split(rel), isDir)
}

func split(rel string) []string {
	rel = strings.Trim(filepath.ToSlash(rel), "/")
	return strings.Split(rel, "/")
}

// Parse reads one pattern per line; blank lines and # comments are skipped.
func Parse(r io.Reader) (Matcher, error) {
	ps, err := parsePatterns(r, nil)
	if err != nil {
		return Matcher{}, err
	}
	return newMatcher(ps), nil
}

// Load parses the ignore file at path on the local filesystem. A missing
// file yields an empty matcher together with the open error.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()
	return Parse(f)
}

// LoadFS builds a matcher for the tree at root inside fsys: the root's
// .emojiscanignore when ownFile is set, and every .gitignore below root
// when gitignores is set. Missing files are not an error.
func LoadFS(fsys billy.Filesystem, root string, ownFile, gitignores bool) (Matcher, error) {
	var ps []gitignore.Pattern
	if ownFile {
		if f, err := fsys.Open(fsys.Join(root, FileName)); err == nil {
			own, perr := parsePatterns(f, nil)
			_ = f.Close()
			if perr != nil {
				return Matcher{}, fmt.Errorf("read %s: %w", FileName, perr)
			}
			ps = append(ps, own...)
		}
	}
	if gitignores {
		sub, err := fsys.Chroot(root)
		if err != nil {
			return Matcher{}, fmt.Errorf("chroot %s: %w", root, err)
		}
		gps, err := gitignore.ReadPatterns(sub, nil)
		if err != nil {
			return Matcher{}, fmt.Errorf("read .gitignore: %w", err)
		}
		ps = append(ps, gps...)
	}
	return newMatcher(ps), nil
}

func newMatcher(ps []gitignore.Pattern) Matcher {
	if len(ps) == 0 {
		return Matcher{}
	}
	return Matcher{m: gitignore.NewMatcher(ps), n: len(ps)}
}

func parsePatterns(r io.Reader, domain []string) ([]gitignore.Pattern, error) {
	var ps []gitignore.Pattern
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	return ps, sc.Err()
}
