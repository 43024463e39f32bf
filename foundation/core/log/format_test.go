// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial formatter tests
// - 2026-10-18 v0.2.0: Deterministic field order

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedEntry() *Entry {
	e := NewEntry(LevelWarn, "unexpected token")
	e.Timestamp = time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	e.Fields["line"] = 3
	e.Fields["col"] = 9
	e.Fields["component"] = "parser"
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextFormatterFieldOrder(t *testing.T) {
	f := NewTextFormatter()
	out, err := f.Format(fixedEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "12:30:00 [WRN] unexpected token [col=9 component=parser line=3]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := fixedEntry()
	e.RunID = "abc"
	e.Error = errors.New("boom")

	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	s := string(out)

	for _, part := range []string{
		`level=warn`,
		`message="unexpected token"`,
		`run_id=abc`,
		`col=9 component="parser" line=3`,
		`error="boom"`,
	} {
		if !strings.Contains(s, part) {
			t.Errorf("Format() = %q, missing %q", s, part)
		}
	}
}

func TestJSONFormatterErrorDetails(t *testing.T) {
	e := fixedEntry()
	e.Error = errors.New("plain")
	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should be newline terminated")
	}
	if !strings.Contains(string(out), `"error":"plain"`) {
		t.Errorf("Format() = %s, missing error", out)
	}
	if strings.Contains(string(out), "error_details") {
		t.Error("plain errors should not produce error_details")
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(fixedEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) {
		t.Errorf("console output should start with the level color, got %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(fixedEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("DisableColors output contains escape codes: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"audit", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldsKeysSorted(t *testing.T) {
	f := Fields{"b": 1, "a": 2, "c": 3}
	got := strings.Join(f.Keys(), ",")
	if got != "a,b,c" {
		t.Errorf("Keys() = %s, want a,b,c", got)
	}
}
