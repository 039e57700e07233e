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

// Package token defines the macro-style token trees that faithful rendering
// consumes.
//
// A [Stream] is an ordered sequence of [Token]s in source order. Tokens form
// a tree rather than a flat list: a [KindGroup] token owns the stream between
// its matched delimiters, which keeps delimiter pairing out of every consumer
// and lets rendering recurse structurally.
//
// Tokens are immutable values constructed once by a producer (a lexer or a
// macro front end) and consumed read-only. Each token optionally carries a
// [source.Span]; a token without one is synthetic and renders with fallback
// spacing.
//
// Punctuation carries a [Spacing] flag. [Joint] records that the source had
// this character immediately adjacent to the next token, the way the two
// colons of "::" are; it is an authorial adjacency signal distinct from
// whatever the positional math says.
package token
