// Copyright 2025 The promptdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// promptdiff is a development tool that compares two text files with the library and
// prints the result using any of the three renderers.
//
// Usage:
//
//	promptdiff [flags] old-file new-file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/promptdiff/promptdiff"
	"github.com/promptdiff/promptdiff/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		sideBySide  = pflag.BoolP("side-by-side", "s", false, "render two columns instead of inline output")
		htmlOut     = pflag.Bool("html", false, "render HTML")
		width       = pflag.IntP("width", "w", 40, "column width for side-by-side output")
		ignoreWS    = pflag.BoolP("ignore-whitespace", "b", false, "ignore whitespace differences")
		ignoreCase  = pflag.BoolP("ignore-case", "i", false, "ignore case differences")
		lineNumbers = pflag.BoolP("line-numbers", "n", false, "show line numbers")
		colorize    = pflag.Bool("color", false, "color output with ANSI escape codes")
		noHighlight = pflag.Bool("no-highlight", false, "disable character-level highlighting of modified lines")
		threshold   = pflag.Float64("threshold", 0.3, "similarity above which a changed line pair counts as one modification")
	)
	pflag.Parse()
	if pflag.NArg() != 2 {
		return fmt.Errorf("expected two file arguments, got %d", pflag.NArg())
	}

	old, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := os.ReadFile(pflag.Arg(1))
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	dopts := []promptdiff.Option{promptdiff.ModifyThreshold(*threshold)}
	if *ignoreWS {
		dopts = append(dopts, promptdiff.IgnoreWhitespace())
	}
	if *ignoreCase {
		dopts = append(dopts, promptdiff.IgnoreCase())
	}
	result := promptdiff.Diff(string(old), string(new), dopts...)

	var ropts []render.Option
	if *lineNumbers {
		ropts = append(ropts, render.LineNumbers())
	}
	if *noHighlight {
		ropts = append(ropts, render.NoHighlight())
	}

	var out string
	switch {
	case *htmlOut:
		// HTML output has no use for terminal colors or column widths.
		out = render.HTML(result, ropts...)
	case *sideBySide:
		ropts = append(ropts, render.Width(*width))
		if *colorize {
			ropts = append(ropts, render.Color())
		}
		out = render.SideBySide(result, ropts...)
	default:
		if *colorize {
			ropts = append(ropts, render.Color())
		}
		out = render.Inline(result, ropts...)
	}
	fmt.Print(out)

	return nil
}
