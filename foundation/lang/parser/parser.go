// File: parser.go
// Title: Recursive Descent Parser
// Description: Grammar dispatch for literals, application, lambda, def and
//              enum forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/foundation/lang/token"
)

// Parser holds one token stream and the forms parsed from it so far.
// A Parser is not safe for concurrent use.
type Parser struct {
	tokens []token.Token
	cursor int
	output []ast.Expr
	logger *mdwlog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// New creates a parser positioned at the first token. The tokens are not
// validated; the last one is treated as the sentinel.
func New(tokens []token.Token) *Parser {
	return NewWithOptions(tokens, Options{})
}

// NewWithOptions creates a parser with the given options
func NewWithOptions(tokens []token.Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		tokens: tokens,
		logger: opts.Logger.WithField("component", "parser"),
	}
}

// Parse parses top-level forms until the sentinel. The first error aborts
// parsing and no forms are returned with it.
func (p *Parser) Parse() ([]ast.Expr, error) {
	p.logger.Debug("Starting parse", mdwlog.Fields{
		"tokens": len(p.tokens),
	})

	for !p.isAtEnd() {
		expr, err := p.parseExpr()
		if err != nil {
			p.logger.Debug("Parse failed", mdwlog.Fields{
				"error":  err.Error(),
				"cursor": p.cursor,
			})
			return nil, err
		}
		p.logger.Trace("Parsed form", mdwlog.Fields{
			"index": len(p.output),
			"type":  expr.Type(),
		})
		p.output = append(p.output, expr)
	}

	p.logger.Debug("Parse completed", mdwlog.Fields{
		"forms": len(p.output),
	})

	forms := make([]ast.Expr, len(p.output))
	copy(forms, p.output)
	return forms, nil
}

// parseExpr parses exactly one expression starting at the cursor
func (p *Parser) parseExpr() (ast.Expr, error) {
	root, err := p.pop()
	if err != nil {
		return nil, err
	}

	switch root.Kind {
	case token.String:
		return ast.String{Value: root.Text}, nil
	case token.Float:
		return ast.Single{Value: root.Float}, nil
	case token.Integer:
		return ast.Integer{Value: root.Int}, nil
	case token.Identifier:
		return ast.Var{Name: root.Text}, nil
	case token.LeftParen:
		return p.parseForm()
	case token.RightParen:
		return nil, newParseError(root, ReasonUnexpected, msgUnexpectedClose)
	default:
		return nil, newParseError(root, ReasonUnexpected, msgUnexpectedKw)
	}
}

// parseForm parses a parenthesized form whose opening parenthesis has
// already been consumed.
func (p *Parser) parseForm() (ast.Expr, error) {
	sub, err := p.pop()
	if err != nil {
		return nil, err
	}

	switch sub.Kind {
	case token.LeftParen:
		// The inner form is the head of an application: ((f)) is (f) and
		// ((lambda (x) x) 1) applies the lambda to 1.
		head, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return p.parseApplication(head)
	case token.Def:
		return p.parseDef()
	case token.Enum:
		return p.parseEnum()
	case token.Lambda:
		return p.parseLambda()
	case token.Identifier:
		return p.parseApplication(ast.Var{Name: sub.Text})
	case token.RightParen:
		return ast.Unit{}, nil
	default:
		return nil, newParseError(sub, ReasonUnexpected,
			"Expected closing parenthesis, opening parenthesis or identifier, found %s.", sub.Kind)
	}
}

// parseApplication parses arguments up to the closing parenthesis and folds
// them left-to-right onto head.
func (p *Parser) parseApplication(head ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	for !p.isAtEnd() && !p.peekIs(token.RightParen) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if err := p.closeForm(); err != nil {
		return nil, err
	}
	return ast.Curry(head, args...), nil
}

func (p *Parser) parseDef() (ast.Expr, error) {
	name, err := p.advance(token.Identifier)
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.closeForm(); err != nil {
		return nil, err
	}
	return ast.Def{Name: name.Text, Value: value}, nil
}

// parseLambda parses (lambda (params...) body) into nested single-parameter
// lambdas, first parameter outermost.
func (p *Parser) parseLambda() (ast.Expr, error) {
	if _, err := p.advance(token.LeftParen); err != nil {
		return nil, err
	}
	run, err := p.advanceMany(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.advance(token.RightParen); err != nil {
		return nil, err
	}

	params := identNames(run)

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	lambda := ast.Abstract(params, body)
	if err := p.closeForm(); err != nil {
		return nil, err
	}
	return lambda, nil
}

// parseEnum parses (enum Name (Variant field...)...). Field names are
// counted and dropped.
func (p *Parser) parseEnum() (ast.Expr, error) {
	name, err := p.advance(token.Identifier)
	if err != nil {
		return nil, err
	}
	if !isCapitalized(name.Text) {
		return nil, newParseError(name, ReasonNaming, msgEnumName)
	}

	enum := ast.Enum{Name: name.Text}
	for !p.isAtEnd() && !p.peekIs(token.RightParen) {
		if _, err := p.advance(token.LeftParen); err != nil {
			return nil, err
		}

		variant, err := p.advance(token.Identifier)
		if err != nil {
			return nil, err
		}
		if !isCapitalized(variant.Text) {
			return nil, newParseError(variant, ReasonNaming, msgVariantName)
		}

		fields, err := p.advanceMany(token.Identifier)
		if err != nil {
			return nil, err
		}

		enum.Variants = append(enum.Variants, variant.Text)
		enum.Arities = append(enum.Arities, len(fields))

		if _, err := p.advance(token.RightParen); err != nil {
			return nil, err
		}
	}

	if err := p.closeForm(); err != nil {
		return nil, err
	}
	return enum, nil
}

// identNames extracts the names of an identifier run
func identNames(run []token.Token) []string {
	names := make([]string, len(run))
	for i, t := range run {
		if t.Kind != token.Identifier {
			invariant("identifier run holds a "+t.Kind.String()+" token", t)
		}
		names[i] = t.Text
	}
	return names
}

// isCapitalized checks the first byte against 'A'..'Z'
func isCapitalized(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}
