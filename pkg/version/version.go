// ============================================================================
// nearestrlc - Preferred-value quantizer for R, L and C
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the nearestrlc components
const (
	// Release version
	Release = "0.1.0"

	// Component versions
	ESeries     = "0.1.0"
	EngNotation = "0.1.0"
	CLI         = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/nearestrlc/pkg/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "eseries":
		return ESeries
	case "engnotation":
		return EngNotation
	case "cli", "nearestrlc":
		return CLI
	default:
		return Release
	}
}

// Info bundles the version with build and runtime metadata
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Release,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("nearestrlc v%s (%s, %s)", i.Version, i.GitCommit, i.Platform)
}
