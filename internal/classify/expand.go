package classify

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand replaces every argument containing glob metacharacters with the
// files it matches (doublestar syntax, so "models/**/*.cto" works). Arguments
// without metacharacters, malformed patterns, and patterns that match nothing
// are kept as given so the classifier can filter them like any other path.
func Expand(args []string) []string {
	return expand(args, os.DirFS)
}

func expand(args []string, dirFS func(dir string) fs.FS) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !hasMeta(arg) {
			out = append(out, arg)
			continue
		}

		base, pattern := splitPattern(filepath.ToSlash(arg))
		matches, err := doublestar.Glob(dirFS(filepath.FromSlash(base)), pattern)
		if err != nil || len(matches) == 0 {
			out = append(out, arg)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			out = append(out, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m)))
		}
	}
	return out
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// splitPattern separates the literal directory prefix of a slash-separated
// pattern from the part that needs matching.
func splitPattern(p string) (base, pattern string) {
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		if !hasMeta(seg) {
			continue
		}
		base = strings.Join(segs[:i], "/")
		switch {
		case i == 0:
			base = "."
		case base == "":
			base = "/"
		}
		return base, strings.Join(segs[i:], "/")
	}
	return ".", p
}
