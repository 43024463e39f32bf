// File: doc.go
// Title: Core Error Package Documentation
// Description: Structured errors for the sable toolchain. Errors carry a
//              code, a severity, free-form details and the operation that
//              produced them, and stay compatible with errors.Is/As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-18 v0.2.0: Parser diagnostic codes, chain-aware code lookup

/*
Package error provides the structured error type used across sable.

Typical use wraps a lower-level failure and classifies it:

	err := mdwerror.Wrap(parseErr, "parse failed").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("lang.ParseTokens").
		WithDetail("line", 3)

Codes map to a default severity (see GetSeverityFromCode); loggers use the
severity to pick a log level. HasCode and GetCode look through wrapped
chains, so callers can classify an error without knowing how deep the
*Error sits.
*/
package error
