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

import "fmt"

const (
	KindInvalid Kind = iota // The kind of the zero Token.

	KindIdent   // An identifier.
	KindLiteral // A literal: number, string, or similar atom.
	KindPunct   // A single punctuation character.
	KindGroup   // A delimited group of tokens.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindIdent:
		return "Ident"
	case KindLiteral:
		return "Literal"
	case KindPunct:
		return "Punct"
	case KindGroup:
		return "Group"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

const (
	// Alone records that the source separated this punctuation character
	// from the next token.
	Alone Spacing = iota

	// Joint records that the source had this punctuation character glued to
	// the next token, with nothing in between.
	Joint
)

// Spacing records the original adjacency of a [KindPunct] token.
type Spacing byte

// String implements [fmt.Stringer].
func (s Spacing) String() string {
	switch s {
	case Alone:
		return "Alone"
	case Joint:
		return "Joint"
	default:
		return fmt.Sprintf("token.Spacing(%d)", int(s))
	}
}

const (
	NoDelimiter Delimiter = iota // A transparent group with no visible brackets.

	Parenthesis // ( ... )
	Brace       // { ... }
	Bracket     // [ ... ]
)

// Delimiter identifies the bracket pair of a [KindGroup] token.
type Delimiter byte

// Open returns the opening bracket text, which is empty for [NoDelimiter].
func (d Delimiter) Open() string {
	switch d {
	case Parenthesis:
		return "("
	case Brace:
		return "{"
	case Bracket:
		return "["
	default:
		return ""
	}
}

// Close returns the closing bracket text, which is empty for [NoDelimiter].
func (d Delimiter) Close() string {
	switch d {
	case Parenthesis:
		return ")"
	case Brace:
		return "}"
	case Bracket:
		return "]"
	default:
		return ""
	}
}

// String implements [fmt.Stringer].
func (d Delimiter) String() string {
	switch d {
	case NoDelimiter:
		return "None"
	case Parenthesis:
		return "Parenthesis"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	default:
		return fmt.Sprintf("token.Delimiter(%d)", int(d))
	}
}
