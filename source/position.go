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
	"cmp"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Position is a location within a source fragment.
//
// Lines are 1-indexed; because of this, a zero Line doubles as the "no
// position" sentinel, and the zero Position is the absent position.
//
// Columns are 0-indexed and counted in grapheme clusters, not bytes. A tab
// counts as a single column unit; positions record how far into a line a
// token sits, not how wide the line renders on any particular device.
type Position struct {
	Line, Column int
}

// IsZero returns whether this is the absent position.
func (p Position) IsZero() bool {
	return p.Line == 0
}

// Compare lexicographically compares two positions, line first.
//
// Comparing positions from different fragments is meaningless; callers must
// check fragment identity (see [Span.File]) before ordering positions.
func (p Position) Compare(q Position) int {
	if n := cmp.Compare(p.Line, q.Line); n != 0 {
		return n
	}
	return cmp.Compare(p.Column, q.Column)
}

// Before returns whether p is strictly before q.
func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

// Advance returns the position reached after emitting text at p.
//
// Each newline in text resets the column and bumps the line; the remainder
// advances the column by its width. This is how a renderer synthesizes an
// end position for a token that only carries a start.
func (p Position) Advance(text string) Position {
	if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
		p.Line += strings.Count(text, "\n")
		p.Column = Width(text[nl+1:])
		return p
	}
	p.Column += Width(text)
	return p
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if p.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Width returns the width of text in column units, i.e. grapheme clusters.
//
// Multi-byte runes and combining sequences count once; this keeps column
// arithmetic stable for producers that measure columns over decoded text
// rather than raw bytes.
func Width(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
