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
	"html"
	"strings"

	"github.com/promptdiff/promptdiff"
	"github.com/promptdiff/promptdiff/internal/config"
)

// HTML renders a diff as a sequence of <div> elements whose class attribute names the
// line classification ("unchanged", "add", "remove", "modify"), followed by a
// statistics <div>. A highlighted modification carries both versions as <del> and
// <ins> children with the changed runes wrapped in <span class="highlight-remove">
// and <span class="highlight-add">.
//
// All content is escaped for HTML safety before the highlight markers are translated
// into spans, so user content can never reach the output unescaped — including
// content that happens to look like a marker.
//
// The following options are supported: [LineNumbers], [NoHighlight], [Markers].
func HTML(r promptdiff.Result, opts ...Option) string {
	cfg := config.FromOptions(opts, config.LineNumbers|config.Highlight|config.Markers)

	var sb strings.Builder
	sb.WriteString("<div class=\"diff\">\n")
	for _, ln := range r.Lines {
		if ln.Kind == promptdiff.Modified && cfg.Highlight {
			oldMarked, newMarked := charDiff(ln.OldContent, ln.NewContent, cfg.Markers)
			fmt.Fprintf(&sb, "<div class=\"modify\">%s<del>%s</del><ins>%s</ins></div>\n",
				lineno(cfg, ln.NewLine),
				spanify(html.EscapeString(oldMarked), cfg.Markers),
				spanify(html.EscapeString(newMarked), cfg.Markers))
			continue
		}
		num := ln.NewLine
		if ln.Kind == promptdiff.Removed {
			num = ln.OldLine
		}
		fmt.Fprintf(&sb, "<div class=%q>%s%s</div>\n",
			ln.Kind, lineno(cfg, num), html.EscapeString(ln.Content))
	}
	fmt.Fprintf(&sb, "<div class=\"stats\">%s</div>\n", footer(r.Stats))
	sb.WriteString("</div>\n")
	return sb.String()
}

// spanify translates the bracket markers in escaped text into highlight spans. The
// markers are matched in their escaped form, so overriding them with strings that
// contain HTML metacharacters still works.
func spanify(escaped string, m config.MarkerSet) string {
	repl := strings.NewReplacer(
		html.EscapeString(m.DeleteStart), `<span class="highlight-remove">`,
		html.EscapeString(m.DeleteEnd), `</span>`,
		html.EscapeString(m.InsertStart), `<span class="highlight-add">`,
		html.EscapeString(m.InsertEnd), `</span>`,
	)
	return repl.Replace(escaped)
}

func lineno(cfg config.Config, num int) string {
	if !cfg.LineNumbers {
		return ""
	}
	return fmt.Sprintf("<span class=\"lineno\">%d</span>", num)
}
