// File: codes.go
// Title: Error Codes
// Description: Error codes used to classify failures of the parser, the
//              token decoder and the surrounding tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial code set
// - 2026-10-18 v0.2.0: Replaced platform codes with parser/tooling codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parser diagnostics
	CodeSyntax     Code = "SYNTAX"
	CodeUnfinished Code = "UNFINISHED"

	// Tooling
	CodeConfigError  Code = "CONFIG_ERROR"
	CodeStorageError Code = "STORAGE_ERROR"
	CodeServiceError Code = "SERVICE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeUnfinished,
		CodeConfigError, CodeStorageError, CodeServiceError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnfinished:
		return "diagnostic"
	case CodeConfigError:
		return "configuration"
	case CodeStorageError:
		return "storage"
	case CodeServiceError:
		return "service"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code describes a problem in the parsed
// program rather than in the tool itself.
func (c Code) IsDiagnostic() bool {
	return c.Category() == "diagnostic"
}
