// ============================================================================
// sable - token-stream parser toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and parse service
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all sable components
const (
	// Toolchain version
	Toolchain = "0.1.0"

	// Component versions
	Parser       = "0.1.0"
	ParseService = "0.1.0"
	Journal      = "0.1.0"

	// JournalSchema is bumped whenever the journal tables change
	JournalSchema = 1
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "parsesvc", "parse-service":
		return ParseService
	case "journal":
		return Journal
	default:
		return Toolchain
	}
}
