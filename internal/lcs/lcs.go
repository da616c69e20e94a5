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

// Package lcs computes longest common subsequences using the classic O(n·m) dynamic
// programming table with iterative backtracking.
//
// This package is an implementation detail. Users compare documents via the root
// package, which runs the matcher once over lines and once per modified line pair
// over characters.
package lcs

import "slices"

// Longest returns a longest common subsequence of x and y: the longest sequence of
// elements that appears, in order but not necessarily contiguously, in both inputs.
//
// Ties in the table are broken by preferring to advance x over y during backtracking,
// so the result is deterministic for identical inputs. Empty inputs and inputs with
// no common elements yield nil.
func Longest[T comparable](x, y []T) []T {
	n, m := len(x), len(y)
	if n == 0 || m == 0 {
		return nil
	}
	table := build(x, y)
	if table[n*(m+1)+m] == 0 {
		return nil
	}

	// Backtrack iteratively from (n, m) to keep long inputs from exhausting the
	// stack. The subsequence comes out reversed.
	out := make([]T, 0, table[n*(m+1)+m])
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			out = append(out, x[i-1])
			i--
			j--
		case table[(i-1)*(m+1)+j] >= table[i*(m+1)+j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(out)
	return out
}

// Length returns the length of a longest common subsequence of x and y. It keeps only
// two table rows, which makes it much cheaper than [Longest] when the subsequence
// itself isn't needed.
func Length[T comparable](x, y []T) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

// build fills the (n+1)×(m+1) table in row-major order: table[i*(m+1)+j] holds the
// length of the longest common subsequence of x[:i] and y[:j].
func build[T comparable](x, y []T) []int {
	n, m := len(x), len(y)
	table := make([]int, (n+1)*(m+1))
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				table[i*(m+1)+j] = table[(i-1)*(m+1)+j-1] + 1
			} else {
				table[i*(m+1)+j] = max(table[(i-1)*(m+1)+j], table[i*(m+1)+j-1])
			}
		}
	}
	return table
}
