package engine

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/emojiscan/emojiscan/internal/types"
	"github.com/go-git/go-billy/v5"
)

// ErrNotUTF8 marks content that is not valid UTF-8.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// ReadFile loads path from fsys as UTF-8 text. The handle is closed before
// returning on every path. maxBytes <= 0 disables the size cap.
func ReadFile(fsys billy.Filesystem, path string, maxBytes int64) types.ReadResult {
	f, err := fsys.Open(path)
	if err != nil {
		return types.ReadResult{Path: path, Reason: types.ReasonOpen, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return types.ReadResult{Path: path, Reason: types.ReasonRead, Err: err}
	}
	if maxBytes > 0 && int64(len(b)) > maxBytes {
		return types.ReadResult{Path: path, Reason: types.ReasonTooLarge, Err: fmt.Errorf("larger than %d bytes", maxBytes)}
	}
	if !utf8.Valid(b) {
		return types.ReadResult{Path: path, Reason: types.ReasonDecode, Err: ErrNotUTF8}
	}
	return types.ReadResult{Path: path, Content: string(b)}
}
