// File: doc.go
// Title: Language Front End Package Documentation
// Description: Entry point tying token decoding and parsing together.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package lang is the front end of the sable language.

It combines the token, parser and ast packages behind a small Engine that
adds logging, timing, input limits and structured errors:

	engine := lang.New(lang.Options{MaxTokens: 100000})
	result, err := engine.ParseFile("program.tokens.yaml")
	if diag, ok := lang.AsDiagnostic(err); ok {
		fmt.Println(diag) // 3:7 | Enum names have to start with a capital letter.
	}

Subpackages:
  - token:  token kinds, token values and token-file decoding
  - ast:    expression tree, rendering, traversal and encoding
  - parser: recursive descent parser
*/
package lang
