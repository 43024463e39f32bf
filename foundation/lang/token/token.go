// File: token.go
// Title: Token Values
// Description: The Token value type and constructors for each kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strconv"
)

// Token is a lexical unit with its kind, payload and 1-based source position.
// Text holds the string value for String tokens, the name for Identifier
// tokens and the source text for numbers. Int and Float are only meaningful
// for Integer and Float tokens.
type Token struct {
	Kind  Kind
	Text  string
	Int   int32
	Float float32
	Line  int
	Col   int
}

// New creates a payload-free token such as a parenthesis or keyword
func New(kind Kind, line, col int) Token {
	return Token{Kind: kind, Line: line, Col: col}
}

// NewString creates a string literal token
func NewString(value string, line, col int) Token {
	return Token{Kind: String, Text: value, Line: line, Col: col}
}

// NewIdent creates an identifier token
func NewIdent(name string, line, col int) Token {
	return Token{Kind: Identifier, Text: name, Line: line, Col: col}
}

// NewInt creates an integer literal token
func NewInt(value int32, line, col int) Token {
	return Token{Kind: Integer, Text: strconv.FormatInt(int64(value), 10), Int: value, Line: line, Col: col}
}

// NewFloat creates a float literal token
func NewFloat(value float32, line, col int) Token {
	return Token{Kind: Float, Text: strconv.FormatFloat(float64(value), 'g', -1, 32), Float: value, Line: line, Col: col}
}

// NewSentinel creates the end-of-stream token
func NewSentinel(line, col int) Token {
	return Token{Kind: EOF, Line: line, Col: col}
}

// Pos returns the "line:col" position of the token
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Col)
}

// String returns a debug representation of the token
func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("%s(%q)@%s", t.Kind.Tag(), t.Text, t.Pos())
	case Identifier, Integer, Float:
		return fmt.Sprintf("%s(%s)@%s", t.Kind.Tag(), t.Text, t.Pos())
	default:
		return fmt.Sprintf("%s@%s", t.Kind.Tag(), t.Pos())
	}
}

// Terminate returns tokens with a sentinel appended unless the last token
// already is one. The sentinel takes the position of the last token, or 1:1
// for an empty sequence. The input slice is not modified.
func Terminate(tokens []Token) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == EOF {
		return tokens
	}

	line, col := 1, 1
	if n := len(tokens); n > 0 {
		line, col = tokens[n-1].Line, tokens[n-1].Col
	}

	out := make([]Token, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, NewSentinel(line, col))
}
