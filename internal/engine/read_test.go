package engine

import (
	"testing"

	"github.com/emojiscan/emojiscan/internal/types"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "ok.js", []byte("const x = '🎉';"), 0644))
	require.NoError(t, util.WriteFile(fs, "bad.js", []byte{0xff, 0xfe, 'a'}, 0644))
	require.NoError(t, util.WriteFile(fs, "surrogate.js", []byte{0xed, 0xa0, 0x80}, 0644))

	tests := []struct {
		name    string
		path    string
		max     int64
		reason  types.FailureReason
		content string
	}{
		{name: "ok", path: "ok.js", content: "const x = '🎉';"},
		{name: "ok at limit", path: "ok.js", max: 17, content: "const x = '🎉';"},
		{name: "too large", path: "ok.js", max: 16, reason: types.ReasonTooLarge},
		{name: "invalid utf8", path: "bad.js", reason: types.ReasonDecode},
		{name: "encoded surrogate", path: "surrogate.js", reason: types.ReasonDecode},
		{name: "missing", path: "nope.js", reason: types.ReasonOpen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ReadFile(fs, tt.path, tt.max)
			assert.Equal(t, tt.path, rr.Path)
			assert.Equal(t, tt.reason, rr.Reason)
			if tt.reason == types.ReasonNone {
				assert.True(t, rr.OK())
				assert.NoError(t, rr.Err)
				assert.Equal(t, tt.content, rr.Content)
			} else {
				assert.False(t, rr.OK())
				assert.Error(t, rr.Err)
				assert.Empty(t, rr.Content)
			}
		})
	}
}

func TestReadFile_Directory(t *testing.T) {
	dir := t.TempDir()
	rr := ReadFile(osfs.New(dir), ".", 0)
	assert.False(t, rr.OK())
}
