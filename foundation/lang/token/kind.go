// File: kind.go
// Title: Token Kinds
// Description: Enumerates the token kinds understood by the parser and their
//              diagnostic names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"strings"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// EOF marks the sentinel token at the end of every stream
	EOF Kind = iota

	// Literals and names
	String     // "text"
	Float      // 1.5
	Integer    // 42
	Identifier // x, Pair

	// Delimiters
	LeftParen  // (
	RightParen // )

	// Keywords
	Def    // def
	Enum   // enum
	Lambda // lambda
)

// String returns the name of the kind as used in diagnostics
func (k Kind) String() string {
	switch k {
	case EOF:
		return "End of File"
	case String:
		return "String"
	case Float:
		return "Float"
	case Integer:
		return "Integer"
	case Identifier:
		return "Identifier"
	case LeftParen:
		return "Opening Parenthesis"
	case RightParen:
		return "Closing Parenthesis"
	case Def:
		return "def"
	case Enum:
		return "enum"
	case Lambda:
		return "lambda"
	default:
		return "Unknown"
	}
}

// Tag returns the short lowercase name used in token files
func (k Kind) Tag() string {
	switch k {
	case EOF:
		return "eof"
	case String:
		return "string"
	case Float:
		return "float"
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	case LeftParen:
		return "lparen"
	case RightParen:
		return "rparen"
	case Def:
		return "def"
	case Enum:
		return "enum"
	case Lambda:
		return "lambda"
	default:
		return "unknown"
	}
}

// IsKeyword reports whether the kind is a reserved word
func (k Kind) IsKeyword() bool {
	return k == Def || k == Enum || k == Lambda
}

// IsLiteral reports whether the kind carries a literal payload
func (k Kind) IsLiteral() bool {
	return k == String || k == Float || k == Integer
}

var kindAliases = map[string]Kind{
	"eof":         EOF,
	"sentinel":    EOF,
	"string":      String,
	"str":         String,
	"float":       Float,
	"integer":     Integer,
	"int":         Integer,
	"number":      Integer,
	"identifier":  Identifier,
	"ident":       Identifier,
	"lparen":      LeftParen,
	"(":           LeftParen,
	"rparen":      RightParen,
	")":           RightParen,
	"def":         Def,
	"enum":        Enum,
	"lambda":      Lambda,
	"end of file": EOF,
}

// ParseKind resolves a token-file kind name, case-insensitively
func ParseKind(name string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
