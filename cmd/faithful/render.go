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

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	faithful "github.com/hadronized/proc-macro-faithful-display"
	"github.com/hadronized/proc-macro-faithful-display/internal/lex"
	"github.com/hadronized/proc-macro-faithful-display/token"
)

var (
	renderFromYAML bool
	renderDiff     bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a token stream with its original layout",
	Long: `Render tokenizes a file (or, with --from-yaml, decodes a stream dumped
by tokenize) and prints the faithful rendering.

With --diff, render instead prints a unified diff between the input text
and its rendering, as a fidelity check; an empty diff means the layout
survived the round trip. Leading and trailing whitespace around the
outermost tokens is not reproduced and shows up in the diff.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := readInput(args[0])
		if err != nil {
			return err
		}

		var stream token.Stream
		if renderFromYAML {
			if renderDiff {
				return errors.New("--diff needs the original text; it cannot be combined with --from-yaml")
			}
			var doc token.StreamDoc
			if err := yaml.Unmarshal([]byte(file.Text()), &doc); err != nil {
				return err
			}
			stream = doc.Stream
		} else {
			stream = lex.Stream(file)
		}

		rendered := faithful.Render(stream)
		if !renderDiff {
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(file.Text()),
			B:        difflib.SplitLines(rendered + "\n"),
			FromFile: file.Path(),
			ToFile:   file.Path() + " (rendered)",
			Context:  2,
		})
		if err != nil {
			return err
		}
		if diff == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "rendering is layout-identical to the input")
			return nil
		}

		for line := range strings.Lines(diff) {
			switch {
			case strings.HasPrefix(line, "+"):
				fmt.Fprint(cmd.OutOrStdout(), color.GreenString("%s", line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprint(cmd.OutOrStdout(), color.RedString("%s", line))
			default:
				fmt.Fprint(cmd.OutOrStdout(), line)
			}
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderFromYAML, "from-yaml", false, "input is a YAML token stream from `faithful tokenize`")
	renderCmd.Flags().BoolVar(&renderDiff, "diff", false, "print a diff between the input and its rendering")
}
