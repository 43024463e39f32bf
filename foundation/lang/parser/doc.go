// File: doc.go
// Title: Parser Package Documentation
// Description: Recursive descent parser turning sable token streams into
//              expression trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package parser converts a finished token stream into top-level expressions.

The parser reads tokens left to right with one token of lookahead and
produces one ast.Expr per top-level form:

	x  5  1.5  "s"                  literals and variables
	()                              unit
	(def name value)                binding
	(f a b)                         curried call ((f a) b)
	(lambda (x y) body)             curried lambda (lambda x (lambda y body))
	(enum Name (Variant field...))  enum declaration, field names dropped
	((form) args...)                an inner form applied to arguments

The token stream must end with a sentinel (token.EOF). The sentinel only
marks the end of input and is never parsed as content. A closing
parenthesis of def, enum, lambda and call forms may be omitted when the form
runs into the end of input.

Parsing stops at the first error and returns it as a *ParseError whose
Error method renders "<line>:<col> | <message>". Defects in the parser
itself panic with *InvariantViolation.

Example:

	tokens := []token.Token{...} // from a lexer or token.LoadFile
	forms, err := parser.New(tokens).Parse()
	if err != nil {
		fmt.Println(err) // 1:5 | Unfinished expression.
	}
*/
package parser
