// File: stream.go
// Title: Token File Decoding
// Description: Reads token files written by an external lexer and converts
//              between file records and Token values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sable/foundation/core/error"
)

// Record is the serialized form of a token
type Record struct {
	Kind string `yaml:"kind" json:"kind"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
	Line int    `yaml:"line" json:"line"`
	Col  int    `yaml:"col" json:"col"`
}

// Stream is a decoded token file. Tokens always end with a sentinel.
type Stream struct {
	Source string
	Tokens []Token
}

type streamFile struct {
	Source string   `yaml:"source"`
	Tokens []Record `yaml:"tokens"`
}

// Decode parses a YAML or JSON token file
func Decode(data []byte) (*Stream, error) {
	var file streamFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		var records []Record
		if seqErr := yaml.Unmarshal(data, &records); seqErr != nil {
			return nil, mdwerror.Wrap(err, "failed to decode token file").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("token.Decode")
		}
		file.Tokens = records
	}

	tokens, err := FromRecords(file.Tokens)
	if err != nil {
		return nil, err
	}

	return &Stream{
		Source: file.Source,
		Tokens: Terminate(tokens),
	}, nil
}

// LoadFile reads and decodes a token file. The stream source defaults to
// the path when the file does not name one.
func LoadFile(path string) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read token file").
			WithCode(code).
			WithDetail("path", path).
			WithOperation("token.LoadFile")
	}

	stream, err := Decode(data)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid token file").WithDetail("path", path)
	}
	if stream.Source == "" {
		stream.Source = path
	}
	return stream, nil
}

// Encode writes tokens as a YAML token file
func Encode(source string, tokens []Token) ([]byte, error) {
	return yaml.Marshal(streamFile{Source: source, Tokens: ToRecords(tokens)})
}

// FromRecord converts a file record into a token, parsing numeric payloads
func FromRecord(r Record) (Token, error) {
	kind, ok := ParseKind(r.Kind)
	if !ok {
		return Token{}, recordError(r, fmt.Sprintf("unknown token kind %q", r.Kind))
	}

	tok := Token{Kind: kind, Text: r.Text, Line: r.Line, Col: r.Col}
	switch kind {
	case Integer:
		v, err := strconv.ParseInt(r.Text, 10, 32)
		if err != nil {
			return Token{}, recordError(r, fmt.Sprintf("invalid integer %q", r.Text))
		}
		tok.Int = int32(v)
	case Float:
		v, err := strconv.ParseFloat(r.Text, 32)
		if err != nil {
			return Token{}, recordError(r, fmt.Sprintf("invalid float %q", r.Text))
		}
		tok.Float = float32(v)
	case Identifier:
		if r.Text == "" {
			return Token{}, recordError(r, "identifier without text")
		}
	}
	return tok, nil
}

// FromRecords converts records in order, stopping at the first bad one
func FromRecords(records []Record) ([]Token, error) {
	tokens := make([]Token, 0, len(records))
	for _, r := range records {
		tok, err := FromRecord(r)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// ToRecord converts a token into its file record
func (t Token) ToRecord() Record {
	return Record{Kind: t.Kind.Tag(), Text: t.Text, Line: t.Line, Col: t.Col}
}

// ToRecords converts tokens into file records
func ToRecords(tokens []Token) []Record {
	records := make([]Record, len(tokens))
	for i, t := range tokens {
		records[i] = t.ToRecord()
	}
	return records
}

func recordError(r Record, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("token.FromRecord").
		WithDetail("line", r.Line).
		WithDetail("col", r.Col)
}
