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
	"iter"
	"slices"
	"strings"
)

// Stream is an ordered sequence of [Token]s.
//
// Order is source order and is semantically significant; every consumer must
// preserve it. The zero Stream is the empty stream.
type Stream struct {
	toks []Token
}

// New constructs a stream from the given tokens, in order.
func New(toks ...Token) Stream {
	return Stream{toks: slices.Clone(toks)}
}

// Len returns the number of tokens in this stream, not counting tokens
// nested inside groups.
func (s Stream) Len() int {
	return len(s.toks)
}

// IsEmpty returns whether this stream contains no tokens.
func (s Stream) IsEmpty() bool {
	return len(s.toks) == 0
}

// At returns the token at the given index.
//
// Returns the nil token if the index is out of range.
func (s Stream) At(n int) Token {
	if n < 0 || n >= len(s.toks) {
		return Nil
	}
	return s.toks[n]
}

// All returns an iterator over the tokens in this stream, in order.
func (s Stream) All() iter.Seq[Token] {
	return slices.Values(s.toks)
}

// Cursor returns a new cursor over this stream.
func (s Stream) Cursor() *Cursor {
	return &Cursor{toks: s.toks}
}

// String implements [fmt.Stringer]. This is a debugging form with canonical
// single-space separation; use the renderer for the faithful layout.
func (s Stream) String() string {
	var b strings.Builder
	for i, tok := range s.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// Cursor is an iterator-like construct for walking a [Stream]. Unlike a
// plain range func, it supports peeking.
type Cursor struct {
	toks []Token
	idx  int
}

// Done returns whether there are still tokens left to yield.
func (c *Cursor) Done() bool {
	return c.idx >= len(c.toks)
}

// Peek returns the next token without advancing.
//
// Returns the nil token if the cursor is exhausted.
func (c *Cursor) Peek() Token {
	if c.Done() {
		return Nil
	}
	return c.toks[c.idx]
}

// Next returns the next token and advances past it.
//
// Returns the nil token if the cursor is exhausted.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if !tok.IsZero() {
		c.idx++
	}
	return tok
}
