package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// MockEngineScript returns the absolute path of mocks/scripts/mock-ergo-engine.sh.
// The test is skipped on Windows, where the script cannot run.
func MockEngineScript(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("mock engine script requires a POSIX shell")
	}

	path := filepath.Join(FindProjectRoot(t), "mocks", "scripts", "mock-ergo-engine.sh")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("could not find mock-ergo-engine.sh: %v", err)
	}
	return path
}

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
