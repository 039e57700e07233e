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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hadronized/proc-macro-faithful-display/source"
)

func TestPositionCompare(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := source.Position{Line: 2, Column: 5}
	b := source.Position{Line: 2, Column: 9}
	c := source.Position{Line: 4, Column: 0}

	assert.Negative(a.Compare(b))
	assert.Positive(b.Compare(a))
	assert.Zero(a.Compare(a))
	assert.True(b.Before(c))
	assert.False(c.Before(b))

	assert.True(source.Position{}.IsZero())
	assert.False(a.IsZero())
}

func TestPositionAdvance(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	p := source.Position{Line: 3, Column: 4}
	assert.Equal(source.Position{Line: 3, Column: 7}, p.Advance("foo"))
	assert.Equal(source.Position{Line: 5, Column: 2}, p.Advance("a\nbc\nde"))
	assert.Equal(source.Position{Line: 4, Column: 0}, p.Advance("x\n"))

	// Width is measured in grapheme clusters, not bytes.
	assert.Equal(source.Position{Line: 3, Column: 9}, p.Advance("héllo"))
}

func TestWidth(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(0, source.Width(""))
	assert.Equal(5, source.Width("héllo"))
	assert.Equal(2, source.Width("a\t"))
	assert.Equal(1, source.Width("é")) // e + combining acute
}

func TestFileLocation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test.src", "abc\ndef\n\nghi")

	assert.Equal(source.Position{Line: 1, Column: 0}, f.Location(0))
	assert.Equal(source.Position{Line: 1, Column: 2}, f.Location(2))
	assert.Equal(source.Position{Line: 2, Column: 0}, f.Location(4))
	assert.Equal(source.Position{Line: 2, Column: 1}, f.Location(5))
	assert.Equal(source.Position{Line: 3, Column: 0}, f.Location(8))
	assert.Equal(source.Position{Line: 4, Column: 0}, f.Location(9))
	assert.Equal(source.Position{Line: 4, Column: 3}, f.Location(12))
}

func TestFileLocationMultibyte(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.src", "é x")
	// 'é' is two bytes but one column.
	assert.Equal(t, source.Position{Line: 1, Column: 2}, f.Location(3))
}

func TestFileSpan(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test.src", "abc\ndef")
	span := f.Span(4, 7)
	assert.Same(f, span.File)
	assert.Equal(source.Position{Line: 2, Column: 0}, span.Start)
	assert.Equal(source.Position{Line: 2, Column: 3}, span.End)
}

func TestNilFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var f *source.File
	assert.Equal("", f.Path())
	assert.Equal("", f.Text())
	assert.Equal(source.Position{Line: 1}, f.Location(0))
	assert.True(f.Span(0, 0).IsZero())
}

func TestSpanZero(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var zero source.Span
	assert.True(zero.IsZero())
	assert.Equal("<no span>", zero.String())

	f := source.NewFile("test.src", "")
	sp := source.Span{
		File:  f,
		Start: source.Position{Line: 1, Column: 0},
		End:   source.Position{Line: 1, Column: 3},
	}
	assert.False(sp.IsZero())
	assert.True(sp.SameFile(source.Span{File: f}))
	assert.False(sp.SameFile(zero))
	assert.Equal(`"test.src":1:0-1:3`, sp.String())
}

func TestJoin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := source.NewFile("test.src", "")
	g := source.NewFile("other.src", "")

	mk := func(file *source.File, l1, c1, l2, c2 int) source.Span {
		return source.Span{
			File:  file,
			Start: source.Position{Line: l1, Column: c1},
			End:   source.Position{Line: l2, Column: c2},
		}
	}

	joined := source.Join(mk(f, 2, 4, 2, 8), mk(f, 1, 0, 1, 3), mk(f, 2, 6, 3, 1))
	assert.Equal(mk(f, 1, 0, 3, 1), joined)

	// Absent spans and spans from other fragments are ignored.
	joined = source.Join(source.Span{}, mk(f, 1, 2, 1, 5), mk(g, 9, 0, 9, 9))
	assert.Equal(mk(f, 1, 2, 1, 5), joined)

	assert.True(source.Join(source.Span{}, source.Span{}).IsZero())
	assert.True(source.Join().IsZero())
}
