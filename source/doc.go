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

// Package source models the positions and spans that faithful rendering
// consumes.
//
// A [Position] is a line/column pair inside one source fragment. A [Span] is
// a start/end position pair tied to a [File], which names the fragment the
// span was measured against. Macro expansion routinely mixes tokens from
// several fragments (a call site and one or more definition sites), so spans
// carry their fragment and positions from different fragments are never
// directly comparable.
//
// Every span-typed field in this module treats the zero value as "absent".
// Tokens synthesized by a macro have no original position; the renderer is
// expected to degrade gracefully on them, never to fail.
package source
