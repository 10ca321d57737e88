// ============================================================================
// chronos - Timeline markup toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all chronos components
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Component versions
	Parser   = "1.0.0"
	Timeline = "1.0.0"
	Settings = "1.0.0"
	Viewer   = "1.0.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "timeline":
		return Timeline
	case "settings":
		return Settings
	case "viewer":
		return Viewer
	default:
		return Toolkit
	}
}

// Info returns a one-line build description
func Info() string {
	return fmt.Sprintf("chronos %s (commit %s, built %s, %s/%s)",
		Toolkit, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
