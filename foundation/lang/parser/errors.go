// File: errors.go
// Title: Parser Errors
// Description: Positioned parse diagnostics and internal invariant
//              violations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	"github.com/msto63/sable/foundation/lang/token"
)

// Reason classifies a parse error
type Reason int

const (
	// ReasonUnexpected covers tokens of the wrong kind in any position
	ReasonUnexpected Reason = iota

	// ReasonUnfinished means the input ended inside a form
	ReasonUnfinished

	// ReasonNaming means an enum or variant name is not capitalized
	ReasonNaming
)

// String returns the reason name
func (r Reason) String() string {
	switch r {
	case ReasonUnexpected:
		return "unexpected"
	case ReasonUnfinished:
		return "unfinished"
	case ReasonNaming:
		return "naming"
	default:
		return "unknown"
	}
}

// Diagnostic messages
const (
	msgUnfinished      = "Unfinished expression."
	msgUnexpectedClose = "Unexpected closing parenthesis."
	msgUnexpectedKw    = "Unexpected keyword."
	msgEnumName        = "Enum names have to start with a capital letter."
	msgVariantName     = "Enum variant names have to start with a capital letter."
)

// ParseError is a user-facing diagnostic tied to a source position
type ParseError struct {
	Line    int
	Col     int
	Message string
	Reason  Reason
}

// Error renders the diagnostic as "<line>:<col> | <message>"
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d | %s", e.Line, e.Col, e.Message)
}

func newParseError(at token.Token, reason Reason, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Line:    at.Line,
		Col:     at.Col,
		Message: fmt.Sprintf(format, args...),
		Reason:  reason,
	}
}

// InvariantViolation is raised with panic when the parser observes a state
// its own control flow rules out. It signals a parser defect, never bad
// input, and is not meant to be recovered by callers of Parse.
type InvariantViolation struct {
	What  string
	Token token.Token
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("parser invariant violated: %s (at %s)", v.What, v.Token)
}

func invariant(what string, at token.Token) {
	panic(&InvariantViolation{What: what, Token: at})
}
