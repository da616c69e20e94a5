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

package promptdiff

import (
	"strings"

	"github.com/promptdiff/promptdiff/internal/config"
	"github.com/promptdiff/promptdiff/internal/lcs"
)

// Kind describes how a line changed between the old and the new document.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind -linecomment
type Kind int

const (
	Unchanged Kind = iota // unchanged
	Added                 // add
	Removed               // remove
	Modified              // modify
)

// Line is one reconciled line of a diff.
//
//   - For Unchanged, OldLine and NewLine are both set and Content holds the old text.
//   - For Added, only NewLine is set and Content holds the new text.
//   - For Removed, only OldLine is set and Content holds the old text.
//   - For Modified, both positions are set, Content holds the new text, and
//     OldContent/NewContent carry both versions verbatim for character-level
//     re-diffing by renderers.
type Line struct {
	Kind    Kind
	OldLine int // 1-based position in the old document, 0 if the line doesn't exist there
	NewLine int // 1-based position in the new document, 0 if the line doesn't exist there
	Content string

	// Set for Modified only.
	OldContent string
	NewContent string
}

// Stats aggregates the line classifications of a [Result].
type Stats struct {
	Additions     int
	Deletions     int
	Modifications int
	Unchanged     int
}

// Result is the outcome of comparing two documents with [Diff].
//
// Every line of the old document and every line of the new document appears in
// exactly one entry of Lines, either as itself or as one side of a modification, and
// positions are strictly increasing per side.
type Result struct {
	Lines []Line
	Stats Stats
}

// HasChanges reports whether the documents differ under the comparison options used.
func (r Result) HasChanges() bool {
	return r.Stats.Additions+r.Stats.Deletions+r.Stats.Modifications > 0
}

// Diff compares old and new line by line and returns the classified lines together
// with aggregate statistics.
//
// The comparison first computes the longest common subsequence of the (optionally
// normalized) lines and then walks both documents against that backbone. A line pair
// where both sides are off the backbone is reported as a single modification when the
// two lines are similar enough (see [ModifyThreshold]); otherwise the old line is
// reported as removed and the new line is reconsidered on the next step.
//
// An empty document counts as a single blank line, so Diff("", "") reports one
// unchanged line. There are no failure modes: any pair of strings has a defined,
// deterministic result, and inputs are never retained.
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase], [Context],
// [ModifyThreshold].
func Diff(old, new string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase|config.Context|config.ModifyThreshold)

	oldLines := strings.Split(old, "\n")
	newLines := strings.Split(new, "\n")

	// Normalized keys are used for every equality check below; the original text is
	// what ends up in the result.
	oldKeys := make([]string, len(oldLines))
	for i, ln := range oldLines {
		oldKeys[i] = normalize(ln, cfg)
	}
	newKeys := make([]string, len(newLines))
	for i, ln := range newLines {
		newKeys[i] = normalize(ln, cfg)
	}

	backbone := lcs.Longest(oldKeys, newKeys)

	lines := make([]Line, 0, max(len(oldLines), len(newLines)))
	var stats Stats
	s, t, k := 0, 0, 0 // cursors into oldLines, newLines, and the backbone
	for s < len(oldLines) || t < len(newLines) {
		switch {
		case s >= len(oldLines):
			// Old side exhausted, drain the remaining new lines as additions.
			lines = append(lines, Line{Kind: Added, NewLine: t + 1, Content: newLines[t]})
			stats.Additions++
			t++
		case t >= len(newLines):
			lines = append(lines, Line{Kind: Removed, OldLine: s + 1, Content: oldLines[s]})
			stats.Deletions++
			s++
		default:
			oldOnBackbone := k < len(backbone) && oldKeys[s] == backbone[k]
			newOnBackbone := k < len(backbone) && newKeys[t] == backbone[k]
			switch {
			case oldOnBackbone && newOnBackbone:
				lines = append(lines, Line{Kind: Unchanged, OldLine: s + 1, NewLine: t + 1, Content: oldLines[s]})
				stats.Unchanged++
				s++
				t++
				k++
			case oldOnBackbone:
				// The old cursor already sits on the backbone, so the new line is an
				// insertion in front of it.
				lines = append(lines, Line{Kind: Added, NewLine: t + 1, Content: newLines[t]})
				stats.Additions++
				t++
			case newOnBackbone:
				lines = append(lines, Line{Kind: Removed, OldLine: s + 1, Content: oldLines[s]})
				stats.Deletions++
				s++
			case similarity(oldKeys[s], newKeys[t]) > cfg.ModifyThreshold:
				// Both sides are off the backbone. Lines that still share most of
				// their characters are one edited line, not an unrelated pair.
				lines = append(lines, Line{
					Kind:       Modified,
					OldLine:    s + 1,
					NewLine:    t + 1,
					Content:    newLines[t],
					OldContent: oldLines[s],
					NewContent: newLines[t],
				})
				stats.Modifications++
				s++
				t++
			default:
				// Unrelated lines: report the removal now and give the new line
				// another shot on the next step.
				lines = append(lines, Line{Kind: Removed, OldLine: s + 1, Content: oldLines[s]})
				stats.Deletions++
				s++
			}
		}
	}

	return Result{Lines: lines, Stats: stats}
}
