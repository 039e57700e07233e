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

package source

import (
	"slices"
	"strings"
	"sync"
)

// File is a source fragment that spans refer to.
//
// The identity of the *File pointer is the fragment identity: two spans
// belong to the same fragment exactly when they share the same *File.
// Positions are only comparable within one fragment.
//
// A File may be text-backed or not. Text-backed files can convert byte
// offsets into [Position]s, which is how producers that lex real text attach
// spans. Files without text (for example, fragments reconstructed from a
// serialized stream) act purely as identity.
//
// A nil *File behaves like an empty, unnamed fragment.
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of line lengths: lineIndex[n] is the byte offset at which
	// 1-indexed line n+1 begins. Computed on demand, since files that only
	// serve as fragment identity never need it.
	lineIndex []int
}

// NewFile constructs a new source fragment.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns the fragment's name.
//
// It does not need to be a real filesystem path; macro expansion produces
// fragment names like "<macro expansion>" as a matter of course.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns the fragment's textual contents, if it is text-backed.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Location converts a byte offset into this file's text into a [Position].
//
// This operation is O(log n) in the number of lines, plus the width scan of
// the offset's own line prefix.
func (f *File) Location(offset int) Position {
	if f == nil {
		return Position{Line: 1}
	}

	lines := f.lines()

	// Find the greatest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Position{
		Line:   line + 1,
		Column: Width(f.text[lines[line]:offset]),
	}
}

// Span constructs a span over the given byte offsets of this file's text.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{
		File:  f,
		Start: f.Location(start),
		End:   f.Location(end),
	}
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
