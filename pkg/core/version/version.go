// ============================================================================
// pier - personal command registry
// ============================================================================
//
// Package:     version
// Description: Central version information for the pier binary
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version
const Version = "0.2.0"

// Set at build time via -ldflags "-X github.com/msto63/pier/pkg/core/version.Commit=..."
var (
	Commit    = "none"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("pier %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
