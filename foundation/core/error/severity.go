// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors; loggers map them to log levels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-18 v0.2.0: Code mapping for parser codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks problems in user input, such as a malformed program
	SeverityLow Severity = iota

	// SeverityMedium marks failures the tool can report and move past
	SeverityMedium

	// SeverityHigh marks failures of the tool's own resources (storage, config)
	SeverityHigh

	// SeverityCritical marks broken internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeStorageError, CodeConfigError:
		return SeverityHigh
	case CodeSyntax, CodeUnfinished, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
