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

// Package faithful renders token streams back into text that keeps the
// original layout.
//
// A canonical renderer collapses every inter-token gap to a single space,
// which destroys indentation, line structure, and any notation that is
// whitespace-sensitive. This package instead walks a spanned [token.Stream]
// and reinserts the spaces and newlines the author wrote, as closely as the
// available span metadata permits. The result is text a human can recognize
// as what they typed, which is what diagnostics and macro-debugging tools
// want to quote.
//
// The whole package is a pure function over immutable input. [Render] never
// fails: tokens without spans, spans from different fragments, and malformed
// out-of-order spans all degrade to a single-space separator rather than an
// error. The worst possible outcome is canonical spacing, never a crash.
//
// Concurrent calls are safe on shared streams; each call owns its cursor and
// output buffer, and streams are read-only.
package faithful
