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

// Package promptdiff compares two versions of a text document line by line and
// classifies every line as unchanged, added, removed, or modified.
//
// [Diff] computes a complete [Result] from two in-memory strings. Lines that differ
// on both sides are paired into a single modification when their character-level
// overlap exceeds a similarity threshold, so a reworded sentence shows up as one
// edited line instead of an unrelated delete/insert pair. Comparison options can
// make the classification insensitive to whitespace or case without ever altering
// the displayed text.
//
// Formatting lives in [github.com/promptdiff/promptdiff/render], which provides
// side-by-side, inline, and HTML renderers over the same result.
//
// Performance: comparison is O(L_old·L_new) in lines, and every modified line pair
// adds a character-level pass that is quadratic in line length. The package never
// fails on any input, so callers on a request path should cap input sizes themselves.
package promptdiff
