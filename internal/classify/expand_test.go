// Package classify tests glob expansion of positional arguments.
// Related: internal/classify/expand.go
// Tags: classify, glob, doublestar, expansion
package classify

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS(t *testing.T) func(string) fs.FS {
	t.Helper()

	fsys := fstest.MapFS{
		"models/base.cto":        {Data: []byte("namespace base")},
		"models/nested/deep.cto": {Data: []byte("namespace deep")},
		"models/readme.md":       {Data: []byte("# models")},
		"logic/contract.ergo":    {Data: []byte("contract C {}")},
	}
	return func(dir string) fs.FS {
		if dir == "." {
			return fsys
		}
		sub, err := fs.Sub(fsys, filepath.ToSlash(dir))
		require.NoError(t, err)
		return sub
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args []string
		want []string
	}{
		"literal args pass through": {
			args: []string{"a.cto", "request.json"},
			want: []string{"a.cto", "request.json"},
		},
		"single level pattern": {
			args: []string{"models/*.cto"},
			want: []string{filepath.Join("models", "base.cto")},
		},
		"double star pattern": {
			args: []string{"models/**/*.cto"},
			want: []string{
				filepath.Join("models", "base.cto"),
				filepath.Join("models", "nested", "deep.cto"),
			},
		},
		"pattern at root": {
			args: []string{"*/*.ergo"},
			want: []string{filepath.Join("logic", "contract.ergo")},
		},
		"no match keeps pattern": {
			args: []string{"missing/*.cto"},
			want: []string{"missing/*.cto"},
		},
		"malformed pattern kept literally": {
			args: []string{"notes[draft.txt", "models/[.cto"},
			want: []string{"notes[draft.txt", "models/[.cto"},
		},
		"order of arguments preserved": {
			args: []string{"first.ergo", "logic/*.ergo", "last.cto"},
			want: []string{"first.ergo", filepath.Join("logic", "contract.ergo"), "last.cto"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, expand(tt.args, testFS(t)))
		})
	}
}

func TestExpand_MalformedPatternThenClassify(t *testing.T) {
	t.Parallel()

	got := Classify(expand([]string{"notes[draft.txt", "models/*.cto", "[.ergo"}, testFS(t)))
	assert.Equal(t, []string{filepath.Join("models", "base.cto")}, got.SchemaPaths)
	assert.Equal(t, []string{"[.ergo"}, got.LogicPaths)
}

func TestExpand_RealFilesystem(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "m"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "m", "a.cto"), []byte(""), 0o644))

	got := Expand([]string{filepath.Join(tmpDir, "m", "*.cto")})
	assert.Equal(t, []string{filepath.Join(tmpDir, "m", "a.cto")}, got)
}

func TestSplitPattern(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in          string
		wantBase    string
		wantPattern string
	}{
		"relative":     {in: "models/*.cto", wantBase: "models", wantPattern: "*.cto"},
		"at root":      {in: "*.cto", wantBase: ".", wantPattern: "*.cto"},
		"absolute":     {in: "/srv/models/**/*.cto", wantBase: "/srv/models", wantPattern: "**/*.cto"},
		"filesystem /": {in: "/*.cto", wantBase: "/", wantPattern: "*.cto"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			base, pattern := splitPattern(tt.in)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantPattern, pattern)
		})
	}
}
