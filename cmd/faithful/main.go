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

// faithful is a debugging tool around layout-faithful token rendering: it
// tokenizes files into spanned streams and renders streams back into text
// that keeps the original layout.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadronized/proc-macro-faithful-display/source"
)

var rootCmd = &cobra.Command{
	Use:   "faithful",
	Short: "Render token streams with their original layout",
	Long: `faithful tokenizes source text into spanned token streams and renders
streams back into text whose spacing and line breaks match what the
author wrote, instead of collapsing every gap to a single space.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads the named file, or stdin for "-".
func readInput(path string) (*source.File, error) {
	if path == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return source.NewFile("<stdin>", string(text)), nil
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return source.NewFile(path, string(text)), nil
}
