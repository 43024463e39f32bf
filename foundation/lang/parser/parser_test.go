// File: parser_test.go
// Title: Parser Unit Tests
// Description: Grammar, diagnostics and edge-case tests for the recursive
//              descent parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/foundation/lang/token"
)

// tokenize is a minimal test lexer: parentheses, "strings" without
// whitespace or escapes, numbers, keywords and identifiers.
func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()

	var tokens []token.Token
	line, col := 1, 1
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\n':
			line++
			col = 1
			i++
		case c == ' ' || c == '\t':
			col++
			i++
		case c == '(':
			tokens = append(tokens, token.New(token.LeftParen, line, col))
			col++
			i++
		case c == ')':
			tokens = append(tokens, token.New(token.RightParen, line, col))
			col++
			i++
		case c == '"':
			end := strings.IndexByte(src[i+1:], '"')
			if end < 0 {
				t.Fatalf("unterminated string in %q", src)
			}
			tokens = append(tokens, token.NewString(src[i+1:i+1+end], line, col))
			col += end + 2
			i += end + 2
		default:
			start := i
			for i < len(src) && !strings.ContainsRune(" \t\n()", rune(src[i])) {
				i++
			}
			tokens = append(tokens, word(src[start:i], line, col))
			col += i - start
		}
	}
	return token.Terminate(tokens)
}

func word(w string, line, col int) token.Token {
	switch w {
	case "def":
		return token.New(token.Def, line, col)
	case "enum":
		return token.New(token.Enum, line, col)
	case "lambda":
		return token.New(token.Lambda, line, col)
	}
	if v, err := strconv.ParseInt(w, 10, 32); err == nil {
		return token.NewInt(int32(v), line, col)
	}
	if v, err := strconv.ParseFloat(w, 32); err == nil {
		return token.NewFloat(float32(v), line, col)
	}
	return token.NewIdent(w, line, col)
}

func quietParser(tokens []token.Token) *Parser {
	return NewWithOptions(tokens, Options{Logger: mdwlog.Discard()})
}

func parseSource(t *testing.T, src string) ([]ast.Expr, error) {
	t.Helper()
	return quietParser(tokenize(t, src)).Parse()
}

func v(name string) ast.Expr { return ast.Var{Name: name} }
func n(value int32) ast.Expr { return ast.Integer{Value: value} }

func TestParser_Literals(t *testing.T) {
	tests := []struct {
		name   string
		tokens []token.Token
		want   ast.Expr
	}{
		{"string", []token.Token{token.NewString("hello world", 1, 1)}, ast.String{Value: "hello world"}},
		{"integer", []token.Token{token.NewInt(-42, 1, 1)}, ast.Integer{Value: -42}},
		{"float", []token.Token{token.NewFloat(3.25, 1, 1)}, ast.Single{Value: 3.25}},
		{"identifier", []token.Token{token.NewIdent("x", 1, 1)}, ast.Var{Name: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms, err := quietParser(token.Terminate(tt.tokens)).Parse()
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(forms) != 1 || !ast.Equal(forms[0], tt.want) {
				t.Errorf("Parse() = %v, want [%v]", forms, tt.want)
			}
		})
	}
}

func TestParser_Forms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Expr
	}{
		{
			name:  "def",
			input: "(def x 5)",
			want:  []ast.Expr{ast.Def{Name: "x", Value: n(5)}},
		},
		{
			name:  "unit",
			input: "()",
			want:  []ast.Expr{ast.Unit{}},
		},
		{
			name:  "call without arguments",
			input: "(f)",
			want:  []ast.Expr{v("f")},
		},
		{
			name:  "curried call folds left",
			input: "(f a b c)",
			want: []ast.Expr{ast.Call{
				Fn:  ast.Call{Fn: ast.Call{Fn: v("f"), Arg: v("a")}, Arg: v("b")},
				Arg: v("c"),
			}},
		},
		{
			name:  "nested call argument",
			input: `(f (g a) "s" 1.5)`,
			want: []ast.Expr{ast.Curry(v("f"),
				ast.Call{Fn: v("g"), Arg: v("a")},
				ast.String{Value: "s"},
				ast.Single{Value: 1.5},
			)},
		},
		{
			name:  "lambda folds right",
			input: "(lambda (x y) x)",
			want:  []ast.Expr{ast.Lambda{Param: "x", Body: ast.Lambda{Param: "y", Body: v("x")}}},
		},
		{
			name:  "lambda without parameters",
			input: "(lambda () 1)",
			want:  []ast.Expr{n(1)},
		},
		{
			name:  "applied lambda",
			input: "((lambda (x y) x) 1 2)",
			want: []ast.Expr{ast.Call{
				Fn: ast.Call{
					Fn:  ast.Lambda{Param: "x", Body: ast.Lambda{Param: "y", Body: v("x")}},
					Arg: n(1),
				},
				Arg: n(2),
			}},
		},
		{
			name:  "double open is transparent",
			input: "((f))",
			want:  []ast.Expr{v("f")},
		},
		{
			name:  "double open with arguments",
			input: "((f a) b)",
			want:  []ast.Expr{ast.Curry(v("f"), v("a"), v("b"))},
		},
		{
			name:  "def of lambda",
			input: "(def id (lambda (x) x))",
			want:  []ast.Expr{ast.Def{Name: "id", Value: ast.Lambda{Param: "x", Body: v("x")}}},
		},
		{
			name:  "enum without fields",
			input: "(enum Color (Red) (Green) (Blue))",
			want: []ast.Expr{ast.Enum{
				Name:     "Color",
				Variants: []string{"Red", "Green", "Blue"},
				Arities:  []int{0, 0, 0},
			}},
		},
		{
			name:  "enum drops field names",
			input: "(enum Pair (Mk a b))",
			want:  []ast.Expr{ast.Enum{Name: "Pair", Variants: []string{"Mk"}, Arities: []int{2}}},
		},
		{
			name:  "enum mixed arities",
			input: "(enum Option (None) (Some value))",
			want:  []ast.Expr{ast.Enum{Name: "Option", Variants: []string{"None", "Some"}, Arities: []int{0, 1}}},
		},
		{
			name:  "enum without variants",
			input: "(enum Void)",
			want:  []ast.Expr{ast.Enum{Name: "Void"}},
		},
		{
			name:  "several top-level forms",
			input: "(def x 5)\n(f x)\n7",
			want:  []ast.Expr{ast.Def{Name: "x", Value: n(5)}, ast.Call{Fn: v("f"), Arg: v("x")}, n(7)},
		},
		{
			name:  "empty input",
			input: "",
			want:  []ast.Expr{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !ast.EqualAll(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_ImplicitCloseAtEnd(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Expr
	}{
		{"(def x 5", ast.Def{Name: "x", Value: n(5)}},
		{"(f a b", ast.Curry(v("f"), v("a"), v("b"))},
		{"(lambda (x) x", ast.Lambda{Param: "x", Body: v("x")}},
		{"(enum Color (Red)", ast.Enum{Name: "Color", Variants: []string{"Red"}, Arities: []int{0}}},
		{"((f) a", ast.Call{Fn: v("f"), Arg: v("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if len(got) != 1 || !ast.Equal(got[0], tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		reason Reason
	}{
		{
			name:   "unterminated def",
			input:  "(def x",
			want:   "1:6 | Unfinished expression.",
			reason: ReasonUnfinished,
		},
		{
			name:   "open paren at end",
			input:  "(",
			want:   "1:1 | Unfinished expression.",
			reason: ReasonUnfinished,
		},
		{
			name:   "unterminated variant",
			input:  "(enum E (A",
			want:   "1:10 | Unfinished expression.",
			reason: ReasonUnfinished,
		},
		{
			name:   "bare closing paren",
			input:  ")",
			want:   "1:1 | Unexpected closing parenthesis.",
			reason: ReasonUnexpected,
		},
		{
			name:   "bare keyword",
			input:  "x lambda",
			want:   "1:3 | Unexpected keyword.",
			reason: ReasonUnexpected,
		},
		{
			name:   "literal in head position",
			input:  "(5)",
			want:   "1:2 | Expected closing parenthesis, opening parenthesis or identifier, found Integer.",
			reason: ReasonUnexpected,
		},
		{
			name:   "def without name",
			input:  "(def 5 5)",
			want:   "1:6 | Expected Identifier, found Integer.",
			reason: ReasonUnexpected,
		},
		{
			name:   "def with extra value",
			input:  "(def x 5 6)",
			want:   "1:10 | Expected Closing Parenthesis, found Integer.",
			reason: ReasonUnexpected,
		},
		{
			name:   "lambda without parameter list",
			input:  "(lambda x x)",
			want:   "1:9 | Expected Opening Parenthesis, found Identifier.",
			reason: ReasonUnexpected,
		},
		{
			name:   "lambda parameter list with literal",
			input:  "(lambda (x 1) x)",
			want:   "1:12 | Expected Closing Parenthesis, found Integer.",
			reason: ReasonUnexpected,
		},
		{
			name:   "lowercase enum name",
			input:  "(enum color (Red))",
			want:   "1:7 | Enum names have to start with a capital letter.",
			reason: ReasonNaming,
		},
		{
			name:   "lowercase variant name",
			input:  "(enum Color (red))",
			want:   "1:14 | Enum variant names have to start with a capital letter.",
			reason: ReasonNaming,
		},
		{
			name:   "variant without parentheses",
			input:  "(enum Color Red)",
			want:   "1:13 | Expected Opening Parenthesis, found Identifier.",
			reason: ReasonUnexpected,
		},
		{
			name:   "literal field",
			input:  "(enum Pair (Mk 1))",
			want:   "1:16 | Expected Closing Parenthesis, found Integer.",
			reason: ReasonUnexpected,
		},
		{
			name:   "error position on later line",
			input:  "(def x 5)\n  )",
			want:   "2:3 | Unexpected closing parenthesis.",
			reason: ReasonUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms, err := parseSource(t, tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got %v", tt.input, forms)
			}
			if forms != nil {
				t.Errorf("Parse(%q) returned forms with error: %v", tt.input, forms)
			}
			if err.Error() != tt.want {
				t.Errorf("Parse(%q) error = %q, want %q", tt.input, err.Error(), tt.want)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if pe.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", pe.Reason, tt.reason)
			}
		})
	}
}

func TestParser_FirstErrorAborts(t *testing.T) {
	forms, err := parseSource(t, "(def x 5) ) (def y")
	if err == nil {
		t.Fatal("expected error")
	}
	if forms != nil {
		t.Errorf("no forms should be returned, got %v", forms)
	}
	if !strings.Contains(err.Error(), "Unexpected closing parenthesis.") {
		t.Errorf("error = %v, want the first error", err)
	}
}

func TestParser_Deterministic(t *testing.T) {
	tokens := tokenize(t, "(def f (lambda (x y) (g x y)))\n(enum Shape (Circle r) (Rect w h))\n(f 1 2)")

	first, err := quietParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := quietParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !ast.EqualAll(first, second) {
		t.Errorf("re-parse differs:\n%v\n%v", first, second)
	}
}

func TestParser_DoubleOpenMatchesSingle(t *testing.T) {
	single, err := parseSource(t, "(f)")
	if err != nil {
		t.Fatal(err)
	}
	double, err := parseSource(t, "((f))")
	if err != nil {
		t.Fatal(err)
	}
	if !ast.EqualAll(single, double) {
		t.Errorf("(f) = %v, ((f)) = %v", single, double)
	}
}

func TestParser_EmptyTokenSlice(t *testing.T) {
	forms, err := quietParser(nil).Parse()
	if err != nil || len(forms) != 0 {
		t.Errorf("Parse(nil) = %v, %v; want no forms", forms, err)
	}
}

func TestParser_SentinelIsNotContent(t *testing.T) {
	// A sentinel that looks like a closing paren is still only an end marker.
	tokens := []token.Token{token.NewIdent("x", 1, 1), token.New(token.RightParen, 1, 2)}
	forms, err := quietParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(forms) != 1 || !ast.Equal(forms[0], v("x")) {
		t.Errorf("Parse() = %v", forms)
	}
}

func TestCursorPrimitives(t *testing.T) {
	p := quietParser(tokenize(t, "a b 1"))

	if tok, ok := p.peek(); !ok || tok.Text != "a" {
		t.Errorf("peek() = %v, %v", tok, ok)
	}

	run, err := p.advanceMany(token.Identifier)
	if err != nil {
		t.Fatalf("advanceMany() error = %v", err)
	}
	if len(run) != 2 {
		t.Errorf("advanceMany() consumed %d tokens, want 2", len(run))
	}

	if _, err := p.advance(token.Identifier); err == nil {
		t.Error("advance(Identifier) on an integer should fail")
	}
	if !p.isAtEnd() {
		t.Error("cursor should be at the sentinel")
	}
	if _, ok := p.peek(); ok {
		t.Error("peek() at end should report nothing")
	}

	_, err = p.pop()
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Reason != ReasonUnfinished {
		t.Errorf("pop() at end error = %v, want unfinished", err)
	}
}

func TestIdentNamesInvariant(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*InvariantViolation); !ok {
			t.Errorf("recover() = %v, want *InvariantViolation", r)
		}
	}()
	identNames([]token.Token{token.NewIdent("x", 1, 1), token.NewInt(1, 1, 3)})
}

func TestIsCapitalized(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Red", true},
		{"Z", true},
		{"red", false},
		{"_Red", false},
		{"", false},
		{"Ärger", false},
	}

	for _, tt := range tests {
		if got := isCapitalized(tt.name); got != tt.want {
			t.Errorf("isCapitalized(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParser_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText, Output: &buf})

	_, err := NewWithOptions(tokenize(t, "(def x 5)"), Options{Logger: logger}).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Parse completed") || !strings.Contains(out, "component=parser") {
		t.Errorf("log output = %q", out)
	}
}
