package files

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/emojiscan/emojiscan/internal/ignore"
)

// AppendIgnore ensures the given pattern is present in the .emojiscanignore
// at root. It creates the file if missing and reports whether the pattern
// was added. Idempotent.
func AppendIgnore(root, pattern string) (bool, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false, nil
	}
	path := filepath.Join(root, ignore.FileName)
	existing := map[string]bool{}
	endsWithNewline := true
	if b, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(bytes.NewReader(b))
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		endsWithNewline = len(b) == 0 || b[len(b)-1] == '\n'
	}
	if existing[pattern] {
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	line := pattern + "\n"
	if !endsWithNewline {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		return false, err
	}
	return true, nil
}

// DefaultGeneratedIgnores returns common generated web-asset patterns that
// are safe to ignore.
func DefaultGeneratedIgnores() []string {
	return []string{
		"*.min.js",
		"*.min.css",
		"*.bundle.js",
		"*.chunk.js",
		"node_modules/",
		"dist/",
	}
}
