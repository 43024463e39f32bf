// File: token_test.go
// Title: Token Tests
// Description: Tests for token kinds, constructors, sentinel handling and
//              token-file decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial tests

package token

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/sable/foundation/core/error"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "End of File"},
		{String, "String"},
		{Float, "Float"},
		{Integer, "Integer"},
		{Identifier, "Identifier"},
		{LeftParen, "Opening Parenthesis"},
		{RightParen, "Closing Parenthesis"},
		{Def, "def"},
		{Enum, "enum"},
		{Lambda, "lambda"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKindRoundTripsTag(t *testing.T) {
	for k := EOF; k <= Lambda; k++ {
		got, ok := ParseKind(k.Tag())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.Tag(), got, ok, k)
		}
	}
	if _, ok := ParseKind("bracket"); ok {
		t.Error("ParseKind should reject unknown names")
	}
}

func TestKindPredicates(t *testing.T) {
	if !Def.IsKeyword() || !Enum.IsKeyword() || !Lambda.IsKeyword() {
		t.Error("def, enum and lambda are keywords")
	}
	if Identifier.IsKeyword() || LeftParen.IsKeyword() {
		t.Error("identifiers and parentheses are not keywords")
	}
	if !Integer.IsLiteral() || Identifier.IsLiteral() {
		t.Error("IsLiteral classification is wrong")
	}
}

func TestConstructors(t *testing.T) {
	i := NewInt(-7, 2, 3)
	if i.Kind != Integer || i.Int != -7 || i.Text != "-7" {
		t.Errorf("NewInt() = %+v", i)
	}

	f := NewFloat(1.5, 1, 1)
	if f.Kind != Float || f.Float != 1.5 || f.Text != "1.5" {
		t.Errorf("NewFloat() = %+v", f)
	}

	if got := NewIdent("x", 4, 9).Pos(); got != "4:9" {
		t.Errorf("Pos() = %q, want 4:9", got)
	}
}

func TestTerminate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := Terminate(nil)
		if len(got) != 1 || got[0].Kind != EOF || got[0].Line != 1 || got[0].Col != 1 {
			t.Errorf("Terminate(nil) = %v", got)
		}
	})

	t.Run("appends at last position", func(t *testing.T) {
		in := []Token{New(LeftParen, 1, 1), New(RightParen, 3, 4)}
		got := Terminate(in)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[2].Kind != EOF || got[2].Line != 3 || got[2].Col != 4 {
			t.Errorf("sentinel = %v", got[2])
		}
		if len(in) != 2 {
			t.Error("Terminate must not modify its input")
		}
	})

	t.Run("keeps existing sentinel", func(t *testing.T) {
		in := []Token{NewIdent("x", 1, 1), NewSentinel(1, 2)}
		if got := Terminate(in); len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLen  int
		wantSrc  string
		wantCode mdwerror.Code
	}{
		{
			name: "yaml mapping",
			input: `
source: demo.sbl
tokens:
  - {kind: lparen, line: 1, col: 1}
  - {kind: def, line: 1, col: 2}
  - {kind: identifier, text: x, line: 1, col: 6}
  - {kind: integer, text: "5", line: 1, col: 8}
  - {kind: rparen, line: 1, col: 9}
`,
			wantLen: 6,
			wantSrc: "demo.sbl",
		},
		{
			name:    "json sequence",
			input:   `[{"kind":"float","text":"2.5","line":1,"col":1},{"kind":"eof","line":1,"col":4}]`,
			wantLen: 2,
		},
		{
			name:     "unknown kind",
			input:    `[{"kind":"bracket","line":1,"col":1}]`,
			wantCode: mdwerror.CodeInvalidInput,
		},
		{
			name:     "integer overflow",
			input:    `[{"kind":"integer","text":"99999999999","line":1,"col":1}]`,
			wantCode: mdwerror.CodeInvalidInput,
		},
		{
			name:     "not a token file",
			input:    `[{"kind": "lparen"`,
			wantCode: mdwerror.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := Decode([]byte(tt.input))
			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("Decode() expected error")
				}
				if !mdwerror.HasCode(err, tt.wantCode) {
					t.Errorf("Decode() error code = %v, want %v", mdwerror.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(stream.Tokens) != tt.wantLen {
				t.Errorf("len(Tokens) = %d, want %d", len(stream.Tokens), tt.wantLen)
			}
			if stream.Source != tt.wantSrc {
				t.Errorf("Source = %q, want %q", stream.Source, tt.wantSrc)
			}
			if last := stream.Tokens[len(stream.Tokens)-1]; last.Kind != EOF {
				t.Errorf("last token = %v, want sentinel", last)
			}
		})
	}
}

func TestDecodePayloads(t *testing.T) {
	stream, err := Decode([]byte(`[{"kind":"int","text":"42","line":2,"col":3},{"kind":"float","text":"0.25","line":2,"col":6}]`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if stream.Tokens[0].Int != 42 {
		t.Errorf("Int = %d, want 42", stream.Tokens[0].Int)
	}
	if stream.Tokens[1].Float != 0.25 {
		t.Errorf("Float = %v, want 0.25", stream.Tokens[1].Float)
	}
	if s := stream.Tokens[2]; s.Line != 2 || s.Col != 6 {
		t.Errorf("sentinel position = %s, want 2:6", s.Pos())
	}
}

func TestLoadFileAndEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")

	data, err := Encode("", []Token{New(LeftParen, 1, 1), New(RightParen, 1, 2)})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	stream, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if stream.Source != path {
		t.Errorf("Source = %q, want %q", stream.Source, path)
	}
	if len(stream.Tokens) != 3 {
		t.Errorf("len(Tokens) = %d, want 3", len(stream.Tokens))
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file code = %v, want NOT_FOUND", mdwerror.GetCode(err))
	}
}
