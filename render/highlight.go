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
	"strings"

	"github.com/promptdiff/promptdiff/internal/config"
	"github.com/promptdiff/promptdiff/internal/lcs"
)

// charDiff re-diffs a modified line pair at character granularity and returns both
// lines with the runes missing from the common subsequence wrapped in markers, one
// wrap per rune. The marked-up strings are the shared intermediate representation for
// all renderers; each renderer translates the markers into its own medium.
func charDiff(oldLine, newLine string, m config.MarkerSet) (oldMarked, newMarked string) {
	ro := []rune(oldLine)
	rn := []rune(newLine)
	common := lcs.Longest(ro, rn)
	oldMarked = markMissing(ro, common, m.DeleteStart, m.DeleteEnd)
	newMarked = markMissing(rn, common, m.InsertStart, m.InsertEnd)
	return oldMarked, newMarked
}

// markMissing walks rs against the common subsequence, passing shared runes through
// unmodified and wrapping everything else in start/end markers. The greedy walk is
// sound because common is a subsequence of rs.
func markMissing(rs, common []rune, start, end string) string {
	var sb strings.Builder
	k := 0
	for _, r := range rs {
		if k < len(common) && r == common[k] {
			sb.WriteRune(r)
			k++
			continue
		}
		sb.WriteString(start)
		sb.WriteRune(r)
		sb.WriteString(end)
	}
	return sb.String()
}
