// File: cursor.go
// Title: Token Cursor
// Description: Cursor primitives over the token slice: lookahead,
//              consumption and kind checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/sable/foundation/lang/token"
)

// isAtEnd reports whether the cursor has reached the sentinel, which is the
// last element of the slice.
func (p *Parser) isAtEnd() bool {
	return p.cursor+1 >= len(p.tokens)
}

// peek returns the token at the cursor without consuming it
func (p *Parser) peek() (token.Token, bool) {
	if p.isAtEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.cursor], true
}

// peekIs reports whether a token of kind k is next
func (p *Parser) peekIs(k token.Kind) bool {
	t, ok := p.peek()
	return ok && t.Kind == k
}

// pop consumes the token at the cursor. At the end of input it fails with
// an unfinished-expression error positioned at the sentinel.
func (p *Parser) pop() (token.Token, error) {
	if p.isAtEnd() {
		return token.Token{}, newParseError(p.endToken(), ReasonUnfinished, msgUnfinished)
	}
	p.cursor++
	return p.tokens[p.cursor-1], nil
}

// advance pops one token and checks its kind
func (p *Parser) advance(expected token.Kind) (token.Token, error) {
	t, err := p.pop()
	if err != nil {
		return t, err
	}
	if t.Kind != expected {
		return t, newParseError(t, ReasonUnexpected, "Expected %s, found %s.", expected, t.Kind)
	}
	return t, nil
}

// advanceMany greedily consumes a run of tokens of kind k
func (p *Parser) advanceMany(k token.Kind) ([]token.Token, error) {
	var run []token.Token
	for p.peekIs(k) {
		t, err := p.advance(k)
		if err != nil {
			return nil, err
		}
		run = append(run, t)
	}
	return run, nil
}

// closeForm consumes the closing parenthesis of a form unless the input has
// already ended.
func (p *Parser) closeForm() error {
	if p.isAtEnd() {
		return nil
	}
	_, err := p.advance(token.RightParen)
	return err
}

// endToken returns the token used to position end-of-input errors
func (p *Parser) endToken() token.Token {
	switch {
	case p.cursor < len(p.tokens):
		return p.tokens[p.cursor]
	case len(p.tokens) > 0:
		return p.tokens[len(p.tokens)-1]
	default:
		return token.NewSentinel(1, 1)
	}
}
