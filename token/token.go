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

	"github.com/hadronized/proc-macro-faithful-display/source"
)

// Nil is the nil [Token], i.e., the zero value.
var Nil Token

// Token is a single element of a [Stream].
//
// Tokens are immutable values; the accessors never mutate. The zero value of
// Token is the so-called "nil token", which denotes the absence of a token:
// its kind is [KindInvalid] and every accessor returns a zero value.
type Token struct {
	kind    Kind
	spacing Spacing
	delim   Delimiter
	text    string
	inner   Stream
	span    source.Span
}

// NewIdent constructs an identifier token. The span may be zero for a token
// with no original position.
func NewIdent(text string, span source.Span) Token {
	if text == "" {
		panic("faithful/token: passed empty text to NewIdent")
	}
	return Token{kind: KindIdent, text: text, span: span}
}

// NewLiteral constructs a literal token holding the literal's source text
// verbatim, quotes and escapes included.
func NewLiteral(text string, span source.Span) Token {
	if text == "" {
		panic("faithful/token: passed empty text to NewLiteral")
	}
	return Token{kind: KindLiteral, text: text, span: span}
}

// NewPunct constructs a punctuation token for a single character.
func NewPunct(r rune, spacing Spacing, span source.Span) Token {
	return Token{kind: KindPunct, text: string(r), spacing: spacing, span: span}
}

// NewGroup constructs a group token owning the given inner stream.
//
// The span, when present, should enclose the spans of every inner token:
// its start is the opening delimiter and its end is the position just past
// the closing delimiter. Producers that do not track delimiter positions can
// pass [source.Join] over the inner tokens, or the zero span.
func NewGroup(delim Delimiter, inner Stream, span source.Span) Token {
	return Token{kind: KindGroup, delim: delim, inner: inner, span: span}
}

// IsZero returns whether this is the nil token.
func (t Token) IsZero() bool {
	return t.kind == KindInvalid
}

// Kind returns what kind of token this is.
//
// Returns [KindInvalid] if this token is nil.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the token's own text: the identifier or literal text, or the
// punctuation character. Group and nil tokens have no text of their own.
func (t Token) Text() string {
	return t.text
}

// Rune returns the punctuation character of a [KindPunct] token.
//
// Panics if this token is of any other kind.
func (t Token) Rune() rune {
	if t.kind != KindPunct {
		panic(fmt.Sprintf("faithful/token: called Rune on a %v token", t.kind))
	}
	r, _ := utf8.DecodeRuneInString(t.text)
	return r
}

// Spacing returns the adjacency flag of a [KindPunct] token; every other
// kind is [Alone].
func (t Token) Spacing() Spacing {
	return t.spacing
}

// Delimiter returns the bracket pair of a [KindGroup] token; every other
// kind is [NoDelimiter].
func (t Token) Delimiter() Delimiter {
	return t.delim
}

// Children returns the inner stream of a [KindGroup] token, and the empty
// stream for every other kind.
func (t Token) Children() Stream {
	return t.inner
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.span
}

// String implements [fmt.Stringer]. This is a debugging form; it does not
// reproduce the source layout.
func (t Token) String() string {
	switch t.kind {
	case KindGroup:
		return t.delim.Open() + t.inner.String() + t.delim.Close()
	case KindInvalid:
		return "<nil token>"
	default:
		return t.text
	}
}
