// Package version holds the build version, set by the linker.
package version

import "fmt"

var (
	// Populated at build time with -ldflags.
	buildType = "development"
	version   = ""
	commit    = "unknown"
)

// String returns the user-facing version string.
func String() string {
	if IsDevelopment() {
		return fmt.Sprintf("%s (revision %s)", buildType, ShortString())
	}
	return version
}

// ShortString returns an abbreviated commit hash.
func ShortString() string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}

// IsDevelopment reports whether this binary is an unversioned build.
func IsDevelopment() bool {
	return buildType == "development" || version == ""
}
