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

	"github.com/promptdiff/promptdiff"
	"github.com/promptdiff/promptdiff/internal/config"
)

// Inline renders a diff with one prefixed row per entry: "+" for additions, "-" for
// removals, "~" for modifications, and a space for unchanged lines, followed by a
// statistics footer.
//
// When character highlighting is enabled (the default), a modification expands into
// two rows, the old line prefixed "-" and the new line prefixed "+", with the changed
// runes wrapped in markers. [NoHighlight] collapses it back to a single "~" row. This
// deliberately differs from [SideBySide], which always shows a modification as one
// visual row.
//
// The following options are supported: [LineNumbers], [Color], [NoHighlight],
// [Markers].
func Inline(r promptdiff.Result, opts ...Option) string {
	cfg := config.FromOptions(opts, config.LineNumbers|config.Colorize|config.Highlight|config.Markers)

	var sb strings.Builder
	for _, ln := range r.Lines {
		switch ln.Kind {
		case promptdiff.Unchanged:
			inlineRow(&sb, cfg, "", ' ', ln.NewLine, ln.Content)
		case promptdiff.Added:
			inlineRow(&sb, cfg, cfg.Colors.Add, '+', ln.NewLine, ln.Content)
		case promptdiff.Removed:
			inlineRow(&sb, cfg, cfg.Colors.Remove, '-', ln.OldLine, ln.Content)
		case promptdiff.Modified:
			if cfg.Highlight {
				oldMarked, newMarked := charDiff(ln.OldContent, ln.NewContent, cfg.Markers)
				inlineRow(&sb, cfg, cfg.Colors.Remove, '-', ln.OldLine, oldMarked)
				inlineRow(&sb, cfg, cfg.Colors.Add, '+', ln.NewLine, newMarked)
			} else {
				inlineRow(&sb, cfg, cfg.Colors.Modify, '~', ln.NewLine, ln.Content)
			}
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(footer(r.Stats))
	sb.WriteByte('\n')
	return sb.String()
}

func inlineRow(sb *strings.Builder, cfg config.Config, code string, prefix byte, num int, text string) {
	colorize := cfg.Colorize && code != ""
	if colorize {
		sb.WriteString(code)
	}
	if cfg.LineNumbers {
		fmt.Fprintf(sb, "%4d ", num)
	}
	sb.WriteByte(prefix)
	sb.WriteByte(' ')
	sb.WriteString(text)
	if colorize {
		sb.WriteString(cfg.Colors.Reset)
	}
	sb.WriteByte('\n')
}
