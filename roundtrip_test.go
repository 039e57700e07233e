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

package faithful_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	faithful "github.com/hadronized/proc-macro-faithful-display"
	"github.com/hadronized/proc-macro-faithful-display/internal/lex"
	"github.com/hadronized/proc-macro-faithful-display/source"
	"github.com/hadronized/proc-macro-faithful-display/token"
)

// flatTok is a span-free projection of a token, for comparing the streams
// of two different lexes of "the same" text.
type flatTok struct {
	Kind, Text string
	Inner      []flatTok
}

func flatten(s token.Stream) []flatTok {
	var out []flatTok
	for tok := range s.All() {
		flat := flatTok{Kind: tok.Kind().String(), Text: tok.Text()}
		if tok.Kind() == token.KindGroup {
			flat.Text = tok.Delimiter().String()
			flat.Inner = flatten(tok.Children())
		}
		out = append(out, flat)
	}
	return out
}

// Rendering a stream lexed from real text reproduces the text, and
// re-lexing the rendering yields the same tokens.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
	}{
		{
			name: "plain code",
			text: "fn main() {\n    let x = 42;\n    println!(\"hello  world\");\n}",
		},
		{
			name: "operators",
			text: "a :: b -> (c, d) != e",
		},
		{
			name: "aligned edsl",
			text: "route GET  /users\nroute POST /users/new",
		},
		{
			name: "blank lines",
			text: "first\n\n\nsecond",
		},
		{
			name: "nested groups",
			text: "outer(inner[a, b], {\n    key: value\n})",
		},
		{
			name: "string literal keeps inner whitespace",
			text: "say \"two  spaces\tand a tab\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stream := lex.Stream(source.NewFile(tt.name, tt.text))
			rendered := faithful.Render(stream)
			assert.Equal(t, tt.text, rendered)

			relexed := lex.Stream(source.NewFile(tt.name, rendered))
			diff := cmp.Diff(flatten(stream), flatten(relexed))
			require.Empty(t, diff, "re-lexing the rendering changed the tokens")
		})
	}
}

// Tabs occupy one column unit, so a tab-indented gap renders as a single
// space per tab. The token sequence still survives, only the exact
// whitespace bytes degrade.
func TestRoundTripTabs(t *testing.T) {
	t.Parallel()

	stream := lex.Stream(source.NewFile("tabs", "a\tb"))
	rendered := faithful.Render(stream)
	assert.Equal(t, "a b", rendered)

	relexed := lex.Stream(source.NewFile("tabs", rendered))
	assert.Empty(t, cmp.Diff(flatten(stream), flatten(relexed)))
}

// Rendering does not reproduce whitespace before the first token: rendering
// begins exactly at its text.
func TestRoundTripLeadingWhitespace(t *testing.T) {
	t.Parallel()

	stream := lex.Stream(source.NewFile("indented", "    foo   bar"))
	assert.Equal(t, "foo   bar", faithful.Render(stream))
}
