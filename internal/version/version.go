package version

import (
	"fmt"
	"runtime"
)

// Build metadata injected with -ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func GetVersion() string { return Version }

// GetVersionInfo returns detailed version information
func GetVersionInfo() string {
	if Version == "dev" {
		return fmt.Sprintf("Wellness dev (%s, %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("Wellness %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// GetShortVersion is shown in the TUI header.
func GetShortVersion() string {
	return "Wellness " + Version
}
