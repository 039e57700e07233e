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

import "fmt"

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a start/end position pair within one source fragment.
//
// The zero Span is the absent span, used for tokens synthesized without an
// original position.
type Span struct {
	// The fragment the positions were measured against.
	File *File

	// The start and end positions. End is exclusive: it names the position
	// immediately after the spanned text.
	Start, End Position
}

// IsZero returns whether this is the absent span.
func (s Span) IsZero() bool {
	return s.File == nil && s.Start.IsZero() && s.End.IsZero()
}

// SameFile returns whether both spans carry positions measured against the
// same fragment, which is the precondition for comparing their positions.
func (s Span) SameFile(o Span) bool {
	return s.File == o.File
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<no span>"
	}
	return fmt.Sprintf("%q:%v-%v", s.File.Path(), s.Start, s.End)
}

// Join returns the smallest span enclosing all of the given spans.
//
// Absent spans are ignored, as are spans whose fragment differs from the
// first non-absent span's; if every span is absent, Join returns the zero
// span. This is the shape a bracketed group's span takes when the producer
// does not record delimiter positions explicitly.
func Join(spans ...Spanner) Span {
	var joined Span
	for _, spanner := range spans {
		if spanner == nil {
			continue
		}
		span := spanner.Span()
		if span.IsZero() {
			continue
		}

		if joined.IsZero() {
			joined = span
			continue
		}
		if !joined.SameFile(span) {
			continue
		}

		if span.Start.Before(joined.Start) {
			joined.Start = span.Start
		}
		if joined.End.Before(span.End) {
			joined.End = span.End
		}
	}
	return joined
}
