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

// Render renders a token stream with its original inter-token layout.
//
// Rendering begins exactly at the first token's text; leading whitespace
// before it is not reproduced. From there, the gap before each token is
// computed from the previous token's end position and the next token's
// start position ([GapBetween]), and groups recurse with their delimiters.
//
// Render never fails. Missing or inconsistent spans degrade to single-space
// separation for the affected gaps; everything else keeps its layout.
func Render(stream token.Stream) string {
	var r renderer
	r.stream(stream, source.Span{}, false)
	return r.b.String()
}

// Display wraps a [token.Stream] so that it formats with its original
// layout, for handing streams directly to printf-style consumers.
type Display struct {
	Stream token.Stream
}

// String implements [fmt.Stringer] by way of [Render].
func (d Display) String() string {
	return Render(d.Stream)
}

// renderer accumulates one render pass. The cursor threaded through its
// methods is a collapsed span: File identifies the fragment rendering has
// reached and End is the position just past the last emitted text. A zero
// cursor means no usable position is known.
type renderer struct {
	b strings.Builder
}

// stream renders every token of s in order and returns the final cursor.
//
// inDelim is whether s sits between visible delimiters. The first token of
// a delimited stream takes its gap from the opening delimiter; at the top
// level and inside transparent groups it renders gapless, since rendering
// begins exactly at it.
func (r *renderer) stream(s token.Stream, cur source.Span, inDelim bool) source.Span {
	first := true
	var prev token.Token
	for c := s.Cursor(); !c.Done(); {
		tok := c.Next()

		var gap Gap
		switch {
		case !first:
			gap = GapBetween(cur, tok.Span(), adjacencyBetween(prev, tok))
		case inDelim:
			gap = delimGap(cur, tok.Span())
		}

		cur = r.token(tok, gap)
		prev = tok
		first = false
	}
	return cur
}

func (r *renderer) token(tok token.Token, gap Gap) source.Span {
	if tok.Kind() == token.KindGroup {
		return r.group(tok, gap)
	}

	r.b.WriteString(gap.String())
	r.b.WriteString(tok.Text())
	return advance(tok.Span(), tok.Text())
}

func (r *renderer) group(tok token.Token, gap Gap) source.Span {
	sp := tok.Span()
	delim := tok.Delimiter()

	r.b.WriteString(gap.String())
	mark := r.b.Len()
	r.b.WriteString(delim.Open())

	last := r.stream(tok.Children(), openCursor(sp, delim), delim != token.NoDelimiter)

	if closer := delim.Close(); closer != "" {
		if !sp.IsZero() && !sp.End.IsZero() && !last.IsZero() && last.SameFile(sp) {
			// The group's span ends just past the closing delimiter, which
			// is a single column wide.
			closeStart := sp.End
			if closeStart.Column > 0 {
				closeStart.Column--
			}
			r.b.WriteString(interiorGap(last.End, closeStart).String())
		}
		r.b.WriteString(closer)
	}

	return advance(sp, r.b.String()[mark:])
}

// openCursor returns the cursor for a group's inner stream, positioned just
// past the opening delimiter. A group without a start has no position to
// offer its contents; the inner cursor starts absent.
func openCursor(sp source.Span, delim token.Delimiter) source.Span {
	if sp.IsZero() || sp.Start.IsZero() {
		return source.Span{}
	}
	p := sp.Start.Advance(delim.Open())
	return source.Span{File: sp.File, Start: p, End: p}
}

// advance returns the cursor after a token that emitted text.
//
// The token's own end position wins when it has one. A token with only a
// start synthesizes its end by advancing the start over the emitted text.
// A token with no span at all resets the cursor to absent: positions must
// not resume on its far side, so that both of its neighbors take the
// single-space fallback.
func advance(sp source.Span, text string) source.Span {
	switch {
	case !sp.IsZero() && !sp.End.IsZero():
		return source.Span{File: sp.File, Start: sp.End, End: sp.End}
	case !sp.IsZero() && !sp.Start.IsZero():
		p := sp.Start.Advance(text)
		return source.Span{File: sp.File, Start: p, End: p}
	default:
		return source.Span{}
	}
}
