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

	"github.com/stretchr/testify/assert"

	faithful "github.com/hadronized/proc-macro-faithful-display"
	"github.com/hadronized/proc-macro-faithful-display/source"
)

// span builds a span over f with explicit positions.
func span(f *source.File, startLine, startCol, endLine, endCol int) source.Span {
	return source.Span{
		File:  f,
		Start: source.Position{Line: startLine, Column: startCol},
		End:   source.Position{Line: endLine, Column: endCol},
	}
}

func TestGapBetween(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.src", "")
	g := source.NewFile("other.src", "")

	tests := []struct {
		name       string
		last, next source.Span
		adj        faithful.Adjacency
		want       faithful.Gap
	}{
		{
			name: "same line",
			last: span(f, 3, 7, 3, 10),
			next: span(f, 3, 14, 3, 17),
			want: faithful.Gap{Spaces: 4},
		},
		{
			name: "flush positional",
			last: span(f, 1, 0, 1, 1),
			next: span(f, 1, 1, 1, 2),
			want: faithful.Gap{},
		},
		{
			name: "flush fusible tokens",
			last: span(f, 1, 0, 1, 1),
			next: span(f, 1, 1, 1, 2),
			adj:  faithful.Fusible,
			want: faithful.Gap{Spaces: 1},
		},
		{
			name: "joint wins over distance",
			last: span(f, 1, 0, 1, 1),
			next: span(f, 1, 4, 1, 5),
			adj:  faithful.Glued,
			want: faithful.Gap{},
		},
		{
			name: "joint wins over missing spans",
			adj:  faithful.Glued,
			want: faithful.Gap{},
		},
		{
			name: "cross line",
			last: span(f, 3, 7, 3, 10),
			next: span(f, 5, 2, 5, 5),
			want: faithful.Gap{Newlines: 2, Spaces: 2},
		},
		{
			name: "next line no indent",
			last: span(f, 1, 3, 1, 5),
			next: span(f, 2, 0, 2, 4),
			want: faithful.Gap{Newlines: 1},
		},
		{
			name: "absent last",
			next: span(f, 1, 4, 1, 5),
			want: faithful.Gap{Spaces: 1},
		},
		{
			name: "absent next",
			last: span(f, 1, 0, 1, 1),
			want: faithful.Gap{Spaces: 1},
		},
		{
			name: "different fragments",
			last: span(f, 1, 0, 1, 1),
			next: span(g, 9, 4, 9, 5),
			want: faithful.Gap{Spaces: 1},
		},
		{
			name: "out of order same line",
			last: span(f, 1, 8, 1, 9),
			next: span(f, 1, 2, 1, 3),
			want: faithful.Gap{Spaces: 1},
		},
		{
			name: "out of order earlier line",
			last: span(f, 4, 0, 4, 1),
			next: span(f, 2, 6, 2, 7),
			want: faithful.Gap{Spaces: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, faithful.GapBetween(tt.last, tt.next, tt.adj))
		})
	}
}

func TestGapString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("", faithful.Gap{}.String())
	assert.Equal("    ", faithful.Gap{Spaces: 4}.String())
	assert.Equal("\n\n  ", faithful.Gap{Newlines: 2, Spaces: 2}.String())
	assert.Equal("\n", faithful.Gap{Newlines: 1}.String())
	assert.True(faithful.Gap{}.IsZero())
	assert.False(faithful.Gap{Spaces: 1}.IsZero())
}
