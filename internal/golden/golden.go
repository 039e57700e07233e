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

// Package golden runs file-system-driven golden tests: table-driven tests
// where the "table" is a directory of input files with expected outputs
// stored next to them.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of golden test cases.
type Corpus struct {
	// The root of the test data directory, relative to the test's working
	// directory.
	Root string

	// An environment variable naming a glob of test cases whose expected
	// outputs should be regenerated from the test's actual outputs, instead
	// of compared. The glob is matched against each case's full path under
	// Root, so "**" regenerates everything ("*" does not cross directory
	// separators). Regenerating also fails the test, so stale goldens can
	// never sneak through a passing run.
	Refresh string

	// The file extension (without the dot) of files that define a test case.
	Extension string

	// The extensions of the expected outputs, which live next to each test
	// case as <case>.<output extension>. A missing output file is expected
	// to be empty.
	Outputs []string

	// Test executes one test case, returning one string per entry in
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run enumerates the corpus and runs one subtest per test case.
func (c Corpus) Run(t *testing.T) {
	var cases []string
	err := filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: error while walking %q: %v", c.Root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing goldens because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range cases {
		t.Run(path, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while reading input %q: %v", path, err)
			}

			results := c.Test(t, path, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, path)
			for i, ext := range c.Outputs {
				path := fmt.Sprint(path, ".", ext)
				if refresh {
					c.write(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while reading output %q: %v", path, err)
					continue
				}
				if diff := diff(results[i], string(want)); diff != "" {
					t.Errorf("golden: output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

func (c Corpus) write(t *testing.T, path, text string) {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: error while deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0666); err != nil {
		t.Errorf("golden: error while writing output %q: %v", path, err)
	}
}

// diff returns a unified diff of got against want, or "" if they match.
func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}
