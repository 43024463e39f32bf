// File: doc.go
// Title: Token Package Documentation
// Description: Token kinds, token values and token-file decoding for the
//              sable parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package token defines the lexical tokens consumed by the sable parser.
//
// Tokens are produced by an external lexer. A token sequence handed to the
// parser always ends with a sentinel token of kind EOF; the sentinel carries a
// source position for diagnostics but is never parsed as content.
//
// Token files are YAML (or JSON, which is read as YAML) and look like:
//
//	source: example.sbl
//	tokens:
//	  - {kind: lparen, line: 1, col: 1}
//	  - {kind: def, line: 1, col: 2}
//	  - {kind: identifier, text: x, line: 1, col: 6}
//	  - {kind: integer, text: "5", line: 1, col: 8}
//	  - {kind: rparen, line: 1, col: 9}
//
// A bare sequence of records without the surrounding mapping is accepted too.
package token
