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

package faithful

import (
	"strings"

	"github.com/hadronized/proc-macro-faithful-display/source"
	"github.com/hadronized/proc-macro-faithful-display/token"
)

// Gap is the whitespace to emit between two adjacent rendered tokens.
//
// The zero Gap emits nothing.
type Gap struct {
	// Number of newline characters to emit.
	Newlines int

	// Number of space characters to emit after the newlines. When Newlines
	// is nonzero this is the indentation of the next token on its line;
	// otherwise it is the horizontal distance to it.
	Spaces int
}

// IsZero returns whether this gap emits nothing.
func (g Gap) IsZero() bool {
	return g.Newlines == 0 && g.Spaces == 0
}

// String implements [fmt.Stringer], returning the gap's whitespace.
func (g Gap) String() string {
	if g.IsZero() {
		return ""
	}
	return strings.Repeat("\n", max(g.Newlines, 0)) + strings.Repeat(" ", max(g.Spaces, 0))
}

// Adjacency describes the relationship between the two tokens around a gap,
// as far as whitespace is concerned.
type Adjacency byte

const (
	// Positional makes no claim; the gap is the positional distance, which
	// may legitimately be zero (an identifier flush against a comma, a
	// slash flush against the identifier after it).
	Positional Adjacency = iota

	// Fusible means both tokens are word-like (identifiers or literals): a
	// zero-width gap would fuse them into a single token, so it renders as
	// one space to keep them lexically separate. Positions that place two
	// word-like tokens at zero distance are inconsistent metadata anyway.
	Fusible

	// Glued means the left token is punctuation marked [token.Joint]: the
	// source had it flush against the next token, and nothing is ever
	// inserted, whatever the column math says.
	Glued
)

// adjacencyBetween returns the [Adjacency] between a rendered token and its
// right neighbor.
func adjacencyBetween(prev, next token.Token) Adjacency {
	switch {
	case prev.Kind() == token.KindPunct && prev.Spacing() == token.Joint:
		return Glued
	case wordlike(prev) && wordlike(next):
		return Fusible
	default:
		return Positional
	}
}

func wordlike(tok token.Token) bool {
	return tok.Kind() == token.KindIdent || tok.Kind() == token.KindLiteral
}

// GapBetween computes the whitespace needed between a token that rendered
// over last and a token about to render at next, given the left token's
// [Adjacency].
//
// This is a total function with no failure modes. The rules, in order:
//
//   - [Glued] punctuation was flush against its neighbor in the source; the
//     gap is always empty.
//   - If either span is absent, the spans belong to different fragments, or
//     next starts before last ends, the positions cannot be compared and the
//     gap degrades to a single space. One space keeps tokens lexically
//     separate, which is the only hard requirement left once fidelity is
//     unattainable.
//   - On the same line, the gap is the column distance. A zero distance
//     renders as nothing, except between [Fusible] tokens, where it promotes
//     to one space.
//   - Across lines, the gap is one newline per line crossed, then the next
//     token's column as indentation.
func GapBetween(last, next source.Span, adj Adjacency) Gap {
	if adj == Glued {
		return Gap{}
	}
	if last.IsZero() || next.IsZero() || !last.SameFile(next) {
		return Gap{Spaces: 1}
	}

	from, to := last.End, next.Start
	if from.IsZero() || to.IsZero() {
		return Gap{Spaces: 1}
	}

	switch {
	case to.Line == from.Line:
		d := to.Column - from.Column
		switch {
		case d < 0:
			return Gap{Spaces: 1}
		case d == 0 && adj == Fusible:
			return Gap{Spaces: 1}
		default:
			return Gap{Spaces: d}
		}
	case to.Line > from.Line:
		return Gap{Newlines: to.Line - from.Line, Spaces: to.Column}
	default:
		return Gap{Spaces: 1}
	}
}

// delimGap computes the whitespace between a group's opening delimiter and
// the first token inside it.
//
// Delimiters are not tokens, so none of the token-to-token rules apply:
// unusable positions emit nothing (delimiters hug their content on
// fallback) and a zero distance stays zero.
func delimGap(cur, next source.Span) Gap {
	if cur.IsZero() || next.IsZero() || !cur.SameFile(next) ||
		cur.End.IsZero() || next.Start.IsZero() {
		return Gap{}
	}
	return interiorGap(cur.End, next.Start)
}

// interiorGap computes the whitespace from a position inside a group to the
// group's closing delimiter, or from its opening delimiter to a position
// inside. Zero distances stay zero: an empty group's brackets sit flush.
func interiorGap(from, to source.Position) Gap {
	switch {
	case to.Line > from.Line:
		return Gap{Newlines: to.Line - from.Line, Spaces: to.Column}
	case to.Line == from.Line && to.Column > from.Column:
		return Gap{Spaces: to.Column - from.Column}
	default:
		return Gap{}
	}
}
