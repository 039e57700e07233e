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

	faithful "github.com/hadronized/proc-macro-faithful-display"
	"github.com/hadronized/proc-macro-faithful-display/internal/golden"
	"github.com/hadronized/proc-macro-faithful-display/internal/lex"
	"github.com/hadronized/proc-macro-faithful-display/source"
)

// TestGolden renders each corpus file and compares against the golden
// rendering stored next to it. Set FAITHFUL_REFRESH='**' to regenerate; the
// glob matches full case paths like testdata/render/simple.src.
func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata/render",
		Refresh:   "FAITHFUL_REFRESH",
		Extension: "src",
		Outputs:   []string{"rendered.txt"},
		Test: func(t *testing.T, path, text string) []string {
			stream := lex.Stream(source.NewFile(path, text))
			return []string{faithful.Render(stream) + "\n"}
		},
	}
	corpus.Run(t)
}
