// File: engine.go
// Title: Front End Engine
// Description: Engine wrapping the parser with token limits, timing,
//              logging and mdwerror classification of diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package lang

import (
	"errors"
	"time"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/foundation/lang/parser"
	"github.com/msto63/sable/foundation/lang/token"
)

// Engine parses token streams. It holds no per-parse state and is safe for
// concurrent use; every call creates its own parser.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger

	// MaxTokens rejects longer streams before parsing; 0 means no limit.
	// The sentinel is not counted.
	MaxTokens int
}

// Result describes one successful parse
type Result struct {
	Source   string
	Tokens   int
	Forms    []ast.Expr
	Duration time.Duration
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "engine"),
		options: opts,
	}
}

// ParseTokens parses tokens, appending a sentinel when the slice does not
// end with one. Diagnostics are returned as *mdwerror.Error wrapping the
// *parser.ParseError.
func (e *Engine) ParseTokens(tokens []token.Token) ([]ast.Expr, error) {
	result, err := e.parse("", tokens)
	if err != nil {
		return nil, err
	}
	return result.Forms, nil
}

// ParseStream parses a decoded token file
func (e *Engine) ParseStream(stream *token.Stream) (*Result, error) {
	if stream == nil {
		return nil, mdwerror.New("token stream is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("lang.ParseStream")
	}
	return e.parse(stream.Source, stream.Tokens)
}

// ParseFile loads and parses a token file
func (e *Engine) ParseFile(path string) (*Result, error) {
	stream, err := token.LoadFile(path)
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}
	return e.parse(stream.Source, stream.Tokens)
}

// Validate parses tokens and discards the forms
func (e *Engine) Validate(tokens []token.Token) error {
	_, err := e.ParseTokens(tokens)
	return err
}

func (e *Engine) parse(source string, tokens []token.Token) (*Result, error) {
	tokens = token.Terminate(tokens)
	count := len(tokens) - 1

	if e.options.MaxTokens > 0 && count > e.options.MaxTokens {
		err := mdwerror.Newf("token stream too long: %d > %d", count, e.options.MaxTokens).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("lang.Parse").
			WithDetail("source", source)
		e.logger.LogError(err)
		return nil, err
	}

	logger := e.logger
	if source != "" {
		logger = logger.WithField("source", source)
	}

	timer := logger.StartTimer("parse").WithField("tokens", count)
	forms, err := parser.NewWithOptions(tokens, parser.Options{Logger: logger}).Parse()
	if err != nil {
		timer.Cancel()
		wrapped := classify(err, source)
		logger.LogError(wrapped)
		return nil, wrapped
	}
	elapsed := timer.WithField("forms", len(forms)).Stop()

	return &Result{
		Source:   source,
		Tokens:   count,
		Forms:    forms,
		Duration: elapsed,
	}, nil
}

// classify wraps a parse diagnostic into an mdwerror with position details
func classify(err error, source string) error {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return mdwerror.Wrap(err, "parse failed").WithCode(mdwerror.CodeInternal)
	}

	code := mdwerror.CodeSyntax
	if pe.Reason == parser.ReasonUnfinished {
		code = mdwerror.CodeUnfinished
	}

	wrapped := mdwerror.Wrap(pe, "parse failed").
		WithCode(code).
		WithOperation("lang.Parse").
		WithDetail("line", pe.Line).
		WithDetail("col", pe.Col).
		WithDetail("reason", pe.Reason.String())
	if source != "" {
		wrapped = wrapped.WithDetail("source", source)
	}
	return wrapped
}

// AsDiagnostic extracts the positioned parse error from err, if any
func AsDiagnostic(err error) (*parser.ParseError, bool) {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
