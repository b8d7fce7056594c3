// ============================================================================
// numx - Numeric Extensions
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and foundation
// Author:      Mike Stoffels
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Numx is the CLI version
	Numx = "0.1.0"

	// Foundation is the version of the foundation module
	Foundation = "0.2.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/numx/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// String returns the CLI version line
func String() string {
	return fmt.Sprintf("numx v%s (foundation v%s)", Numx, Foundation)
}
