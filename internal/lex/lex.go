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

// Package lex derives spanned token streams from real source text.
//
// The renderer itself never parses; it consumes streams some front end
// produced. This package is that front end for the tools and tests in this
// module: a small, total tokenizer that attaches full span information, so
// that rendering its output reproduces the input's layout.
//
// The grammar is deliberately generic macro-input shape: identifiers,
// number and string literals, single-character punctuation with adjacency
// detection, and matched ()/[]/{} folded into group tokens. Anything else
// lexes as punctuation. There is no error path; malformed input produces a
// best-effort stream, never a failure.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hadronized/proc-macro-faithful-display/source"
	"github.com/hadronized/proc-macro-faithful-display/token"
)

// Stream tokenizes f's text.
func Stream(f *source.File) token.Stream {
	l := &lexer{f: f, text: f.Text()}
	toks, _ := l.run(0)
	return token.New(toks...)
}

type lexer struct {
	f    *source.File
	text string
	off  int
}

// run lexes tokens until end of input or until closer, which is left
// unconsumed. Returns the tokens and the offset lexing stopped at.
func (l *lexer) run(closer rune) ([]token.Token, int) {
	var toks []token.Token
	for {
		l.skipSpace()
		if l.off >= len(l.text) {
			return toks, l.off
		}

		r, size := utf8.DecodeRuneInString(l.text[l.off:])
		if closer != 0 && r == closer {
			return toks, l.off
		}

		start := l.off
		switch {
		case r == '(' || r == '[' || r == '{':
			l.off += size
			toks = append(toks, l.group(r, start))

		case r == '_' || unicode.IsLetter(r):
			l.off += size
			l.takeWhile(isIdent)
			toks = append(toks, token.NewIdent(l.text[start:l.off], l.span(start)))

		case unicode.IsDigit(r):
			l.off += size
			l.number()
			toks = append(toks, token.NewLiteral(l.text[start:l.off], l.span(start)))

		case r == '"':
			l.off += size
			l.quoted()
			toks = append(toks, token.NewLiteral(l.text[start:l.off], l.span(start)))

		default:
			// Everything else is punctuation, including unmatched closing
			// brackets. Adjacency to further punctuation marks it Joint.
			l.off += size
			toks = append(toks, token.NewPunct(r, l.spacing(), l.span(start)))
		}
	}
}

// group lexes the inside of a bracket opened at start, through the matching
// closer. An unterminated group runs to end of input.
func (l *lexer) group(open rune, start int) token.Token {
	var delim token.Delimiter
	var closer rune
	switch open {
	case '(':
		delim, closer = token.Parenthesis, ')'
	case '[':
		delim, closer = token.Bracket, ']'
	case '{':
		delim, closer = token.Brace, '}'
	}

	inner, stop := l.run(closer)
	l.off = stop
	if l.off < len(l.text) {
		l.off++ // consume the closer; all three are one byte
	}
	return token.NewGroup(delim, token.New(inner...), l.span(start))
}

func (l *lexer) number() {
	for l.off < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.off:])
		switch {
		case isIdent(r):
		case r == '.' && l.digitAt(l.off+size):
		default:
			return
		}
		l.off += size
	}
}

// quoted consumes the remainder of a double-quoted literal, honoring
// backslash escapes. An unterminated literal runs to end of input.
func (l *lexer) quoted() {
	for l.off < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.off:])
		l.off += size
		switch r {
		case '\\':
			_, size := utf8.DecodeRuneInString(l.text[l.off:])
			l.off += size
		case '"':
			return
		}
	}
}

// spacing reports whether the punctuation character just consumed sits flush
// against more punctuation.
func (l *lexer) spacing() token.Spacing {
	if l.off < len(l.text) {
		r, _ := utf8.DecodeRuneInString(l.text[l.off:])
		if isPunct(r) {
			return token.Joint
		}
	}
	return token.Alone
}

func (l *lexer) skipSpace() {
	for l.off < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.off:])
		if !unicode.IsSpace(r) {
			return
		}
		l.off += size
	}
}

func (l *lexer) takeWhile(p func(rune) bool) {
	for l.off < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.off:])
		if !p(r) {
			return
		}
		l.off += size
	}
}

func (l *lexer) digitAt(off int) bool {
	return off < len(l.text) && l.text[off] >= '0' && l.text[off] <= '9'
}

func (l *lexer) span(start int) source.Span {
	return l.f.Span(start, l.off)
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPunct(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
		r != '_' && r != '"' && !strings.ContainsRune("()[]{}", r) && r != utf8.RuneError
}
