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

import "github.com/promptdiff/promptdiff/internal/lcs"

// similarity measures the character-level overlap of a and b in [0, 1] as
// len(LCS(a, b)) / max(len(a), len(b)), counted in runes. Two empty strings are fully
// similar by convention.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	n := max(len(ra), len(rb))
	if n == 0 {
		return 1
	}
	return float64(lcs.Length(ra, rb)) / float64(n)
}
