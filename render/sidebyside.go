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

package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/promptdiff/promptdiff"
	"github.com/promptdiff/promptdiff/internal/config"
)

// SideBySide renders old and new versions in two fixed-width columns separated by
// " | ", one visual row per diff entry, followed by a statistics footer. Added lines
// leave the old column blank, removed lines leave the new column blank, and modified
// lines show both versions, with changed runes wrapped in markers unless highlighting
// is disabled. Cell text wider than the column is truncated with an ellipsis; widths
// are measured in terminal cells, so wide runes line up.
//
// The following options are supported: [LineNumbers], [Color], [Width],
// [NoHighlight], [Markers].
func SideBySide(r promptdiff.Result, opts ...Option) string {
	cfg := config.FromOptions(opts, config.LineNumbers|config.Colorize|config.Width|config.Highlight|config.Markers)

	var sb strings.Builder
	for _, ln := range r.Lines {
		var left, right, code string
		switch ln.Kind {
		case promptdiff.Unchanged:
			left, right = ln.Content, ln.Content
		case promptdiff.Added:
			right = ln.Content
			code = cfg.Colors.Add
		case promptdiff.Removed:
			left = ln.Content
			code = cfg.Colors.Remove
		case promptdiff.Modified:
			left, right = ln.OldContent, ln.NewContent
			if cfg.Highlight {
				left, right = charDiff(ln.OldContent, ln.NewContent, cfg.Markers)
			}
			code = cfg.Colors.Modify
		}

		var row strings.Builder
		if cfg.LineNumbers {
			row.WriteString(gutter(ln.OldLine))
		}
		row.WriteString(cell(left, cfg.Width, true))
		row.WriteString(" | ")
		if cfg.LineNumbers {
			row.WriteString(gutter(ln.NewLine))
		}
		row.WriteString(cell(right, cfg.Width, false))

		text := strings.TrimRight(row.String(), " ")
		if cfg.Colorize && code != "" {
			text = code + text + cfg.Colors.Reset
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(footer(r.Stats))
	sb.WriteByte('\n')
	return sb.String()
}

// cell fits text to the column width, truncating with an ellipsis when it is too
// wide. Only the left column is padded; padding the right one would produce trailing
// whitespace.
func cell(text string, width int, pad bool) string {
	text = runewidth.Truncate(text, width, "...")
	if pad {
		text = runewidth.FillRight(text, width)
	}
	return text
}

// gutter formats a line-number prefix, blank when the line has no position on that
// side.
func gutter(num int) string {
	if num == 0 {
		return "     "
	}
	return fmt.Sprintf("%4d ", num)
}
