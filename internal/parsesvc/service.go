// Package parsesvc exposes the parser as a gRPC service with a result cache
// and an optional run journal.
package parsesvc

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/foundation/lang/token"
	"github.com/msto63/sable/internal/journal"
	"github.com/msto63/sable/internal/render"
	"github.com/msto63/sable/pkg/core/cache"
)

// Recorder stores parse runs
type Recorder interface {
	Record(ctx context.Context, run *journal.Run) error
}

// Request is one parse request
type Request struct {
	Source string
	Tokens []token.Token
}

// Response is the outcome of a successful parse
type Response struct {
	Source   string
	Tokens   int
	Forms    []ast.Expr
	Cached   bool
	Duration time.Duration
}

// Service parses token streams, caching successful results by token content
type Service struct {
	engine   *lang.Engine
	cache    *cache.Cache
	recorder Recorder
	logger   *mdwlog.Logger
}

// NewService creates a service. recorder may be nil.
func NewService(cfg Config, recorder Recorder, logger *mdwlog.Logger) *Service {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	logger = logger.WithField("component", "parsesvc")

	return &Service{
		engine: lang.New(lang.Options{Logger: logger, MaxTokens: cfg.MaxTokens}),
		cache: cache.New(cache.Config{
			MaxItems: cfg.CacheSize,
			TTL:      cfg.CacheTTL,
		}),
		recorder: recorder,
		logger:   logger,
	}
}

// Parse parses req. The context is only consulted before parsing starts.
func (s *Service) Parse(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := token.Terminate(req.Tokens)
	key := cacheKey(tokens)

	if v, ok := s.cache.Get(key); ok {
		forms := append([]ast.Expr(nil), v.([]ast.Expr)...)
		resp := &Response{Source: req.Source, Tokens: len(tokens) - 1, Forms: forms, Cached: true}
		s.logger.WithField("source", req.Source).Debug("parse served from cache")
		s.record(ctx, resp, nil)
		return resp, nil
	}

	result, err := s.engine.ParseStream(&token.Stream{Source: req.Source, Tokens: tokens})
	if err != nil {
		s.record(ctx, &Response{Source: req.Source, Tokens: len(tokens) - 1}, err)
		return nil, err
	}

	// Callers own the returned slice; the cache keeps its own copy.
	s.cache.Set(key, append([]ast.Expr(nil), result.Forms...))

	resp := &Response{
		Source:   result.Source,
		Tokens:   result.Tokens,
		Forms:    result.Forms,
		Duration: result.Duration,
	}
	s.record(ctx, resp, nil)
	return resp, nil
}

// CacheStats reports cache hits and misses
func (s *Service) CacheStats() (hits, misses int64) {
	hits, misses, _ = s.cache.Stats()
	return hits, misses
}

// Close releases the cache
func (s *Service) Close() {
	s.cache.Close()
}

// record writes a journal entry; failures are logged, never returned
func (s *Service) record(ctx context.Context, resp *Response, parseErr error) {
	if s.recorder == nil {
		return
	}

	run := &journal.Run{
		Source:     resp.Source,
		Tokens:     resp.Tokens,
		Forms:      len(resp.Forms),
		Status:     journal.StatusOK,
		Output:     render.Sexpr(resp.Forms),
		DurationMs: resp.Duration.Milliseconds(),
	}
	if parseErr != nil {
		run.Status = journal.StatusError
		run.Diagnostic = parseErr.Error()
		if pe, ok := lang.AsDiagnostic(parseErr); ok {
			run.Diagnostic = pe.Error()
		}
	}

	if err := s.recorder.Record(context.WithoutCancel(ctx), run); err != nil {
		s.logger.WarnWithErr("failed to record parse run", err)
	}
}

// cacheKey covers every field the parser reads, including numeric payloads
func cacheKey(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		payload := t.Text
		switch t.Kind {
		case token.Integer:
			payload = strconv.FormatInt(int64(t.Int), 10)
		case token.Float:
			payload = strconv.FormatUint(uint64(math.Float32bits(t.Float)), 16)
		}
		parts[i] = fmt.Sprintf("%s|%s|%d|%d", t.Kind.Tag(), payload, t.Line, t.Col)
	}
	return cache.Key(parts...)
}
