// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/hadronized/proc-macro-faithful-display/source"
)

// StreamDoc is the serialized form of a [Stream]: a token tree with spans,
// suitable for fixtures and for moving streams between tools.
//
// It marshals to and from YAML. Spans name their fragment by path; spans in
// the document's default fragment (Source) omit it. Decoding interns one
// [source.File] per distinct fragment name, so that spans which named the
// same fragment decode as same-fragment spans. Decoded files are not
// text-backed; they serve as fragment identity only.
type StreamDoc struct {
	// The default fragment name for spans in this document.
	Source string

	// The token stream itself.
	Stream Stream
}

type yamlDoc struct {
	Source string     `yaml:"source,omitempty"`
	Tokens []yamlNode `yaml:"tokens"`
}

// yamlNode is one serialized token. Exactly one of Ident, Literal, Punct,
// and Group is set; which one decides the token's kind.
type yamlNode struct {
	Ident   string     `yaml:"ident,omitempty"`
	Literal string     `yaml:"literal,omitempty"`
	Punct   string     `yaml:"punct,omitempty"`
	Spacing string     `yaml:"spacing,omitempty"`
	Group   string     `yaml:"group,omitempty"`
	Tokens  []yamlNode `yaml:"tokens,omitempty"`
	Span    *yamlSpan  `yaml:"span,omitempty"`
}

// yamlSpan is one serialized span. End is optional: a token that only
// carries a start (the renderer synthesizes its end from the emitted text)
// serializes without one, and decodes back to a start-only span.
type yamlSpan struct {
	Source string  `yaml:"source,omitempty"`
	Start  [2]int  `yaml:"start,flow"`
	End    *[2]int `yaml:"end,omitempty,flow"`
}

// MarshalYAML implements [yaml.Marshaler].
func (d StreamDoc) MarshalYAML() (any, error) {
	out := yamlDoc{
		Source: d.Source,
		Tokens: make([]yamlNode, 0, d.Stream.Len()),
	}
	for tok := range d.Stream.All() {
		node, err := d.encode(tok)
		if err != nil {
			return nil, err
		}
		out.Tokens = append(out.Tokens, node)
	}
	return out, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *StreamDoc) UnmarshalYAML(node *yaml.Node) error {
	var in yamlDoc
	if err := node.Decode(&in); err != nil {
		return err
	}

	dec := &streamDecoder{
		source: in.Source,
		files:  map[string]*source.File{},
	}
	toks, err := dec.tokens(in.Tokens)
	if err != nil {
		return err
	}

	d.Source = in.Source
	d.Stream = Stream{toks: toks}
	return nil
}

func (d StreamDoc) encode(tok Token) (yamlNode, error) {
	var node yamlNode
	switch tok.Kind() {
	case KindIdent:
		node.Ident = tok.Text()
	case KindLiteral:
		node.Literal = tok.Text()
	case KindPunct:
		node.Punct = tok.Text()
		if tok.Spacing() == Joint {
			node.Spacing = "joint"
		}
	case KindGroup:
		switch tok.Delimiter() {
		case Parenthesis:
			node.Group = "paren"
		case Brace:
			node.Group = "brace"
		case Bracket:
			node.Group = "bracket"
		default:
			node.Group = "none"
		}
		for inner := range tok.Children().All() {
			child, err := d.encode(inner)
			if err != nil {
				return yamlNode{}, err
			}
			node.Tokens = append(node.Tokens, child)
		}
	default:
		return yamlNode{}, fmt.Errorf("faithful/token: cannot serialize %v token", tok.Kind())
	}

	if span := tok.Span(); !span.IsZero() && !span.Start.IsZero() {
		node.Span = &yamlSpan{
			Start: [2]int{span.Start.Line, span.Start.Column},
		}
		if end := span.End; !end.IsZero() {
			node.Span.End = &[2]int{end.Line, end.Column}
		}
		if path := span.File.Path(); path != d.Source {
			node.Span.Source = path
		}
	}
	return node, nil
}

type streamDecoder struct {
	source string
	files  map[string]*source.File
}

func (d *streamDecoder) tokens(nodes []yamlNode) ([]Token, error) {
	toks := make([]Token, 0, len(nodes))
	for _, node := range nodes {
		tok, err := d.token(node)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (d *streamDecoder) token(node yamlNode) (Token, error) {
	span, err := d.span(node.Span)
	if err != nil {
		return Nil, err
	}

	switch {
	case node.Ident != "":
		return NewIdent(node.Ident, span), nil

	case node.Literal != "":
		return NewLiteral(node.Literal, span), nil

	case node.Punct != "":
		r, size := utf8.DecodeRuneInString(node.Punct)
		if size != len(node.Punct) {
			return Nil, fmt.Errorf("faithful/token: punct must be a single character, got %q", node.Punct)
		}
		spacing := Alone
		switch node.Spacing {
		case "", "alone":
		case "joint":
			spacing = Joint
		default:
			return Nil, fmt.Errorf("faithful/token: unknown spacing %q", node.Spacing)
		}
		return NewPunct(r, spacing, span), nil

	case node.Group != "":
		var delim Delimiter
		switch node.Group {
		case "paren":
			delim = Parenthesis
		case "brace":
			delim = Brace
		case "bracket":
			delim = Bracket
		case "none":
			delim = NoDelimiter
		default:
			return Nil, fmt.Errorf("faithful/token: unknown delimiter %q", node.Group)
		}
		inner, err := d.tokens(node.Tokens)
		if err != nil {
			return Nil, err
		}
		return NewGroup(delim, Stream{toks: inner}, span), nil

	default:
		return Nil, fmt.Errorf("faithful/token: token node needs one of ident, literal, punct, or group")
	}
}

func (d *streamDecoder) span(node *yamlSpan) (source.Span, error) {
	if node == nil {
		return source.Span{}, nil
	}

	path := node.Source
	if path == "" {
		path = d.source
	}
	file, ok := d.files[path]
	if !ok {
		file = source.NewFile(path, "")
		d.files[path] = file
	}

	span := source.Span{
		File:  file,
		Start: source.Position{Line: node.Start[0], Column: node.Start[1]},
	}
	if span.Start.IsZero() {
		return source.Span{}, fmt.Errorf("faithful/token: span lines are 1-indexed, got start %v", span.Start)
	}
	if node.End != nil {
		span.End = source.Position{Line: node.End[0], Column: node.End[1]}
		if span.End.IsZero() {
			return source.Span{}, fmt.Errorf("faithful/token: span lines are 1-indexed, got end %v", span.End)
		}
		if span.End.Before(span.Start) {
			return source.Span{}, fmt.Errorf("faithful/token: span ends before it starts: %v", span)
		}
	}
	return span, nil
}
