// Package build provides version and build information for ergorun.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns the version fields as "key: value" lines.
func Info() []string {
	return []string{
		fmt.Sprintf("version: %s", Version),
		fmt.Sprintf("commit: %s", Commit),
		fmt.Sprintf("built: %s", BuildDate),
		fmt.Sprintf("go: %s", runtime.Version()),
		fmt.Sprintf("platform: %s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
