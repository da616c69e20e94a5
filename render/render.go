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

// Package render formats [promptdiff.Result] values for human review.
//
// Three independent renderers share the same result: [SideBySide] produces
// two-column terminal output, [Inline] produces unified-style output, and [HTML]
// produces markup for embedding in a page. All renderers are pure functions of the
// result and their options, and all of them report the same statistics in their
// footers.
//
// Modified lines can additionally be re-diffed at character granularity: runes
// missing from the other side are wrapped in bracket markers ("[-x-]" for removed,
// "[+x+]" for inserted), and each renderer translates those markers into its own
// medium.
package render

import (
	"fmt"

	"github.com/promptdiff/promptdiff"
)

// footer formats the statistics line appended by every renderer. Sharing it is what
// keeps the reported counts identical across output formats.
func footer(st promptdiff.Stats) string {
	return fmt.Sprintf("%d additions, %d deletions, %d modifications, %d unchanged",
		st.Additions, st.Deletions, st.Modifications, st.Unchanged)
}
