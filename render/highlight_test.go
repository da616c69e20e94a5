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
	"testing"

	"github.com/promptdiff/promptdiff/internal/config"
)

func TestCharDiff(t *testing.T) {
	tests := []struct {
		name             string
		oldLine, newLine string
		wantOld, wantNew string
	}{
		{
			name:    "identical",
			oldLine: "same",
			newLine: "same",
			wantOld: "same",
			wantNew: "same",
		},
		{
			name:    "insertion",
			oldLine: "color",
			newLine: "colour",
			wantOld: "color",
			wantNew: "colo[+u+]r",
		},
		{
			name:    "deletion",
			oldLine: "colour",
			newLine: "color",
			wantOld: "colo[-u-]r",
			wantNew: "color",
		},
		{
			name:    "disjoint",
			oldLine: "abc",
			newLine: "xyz",
			wantOld: "[-a-][-b-][-c-]",
			wantNew: "[+x+][+y+][+z+]",
		},
		{
			name:    "old-empty",
			oldLine: "",
			newLine: "ab",
			wantOld: "",
			wantNew: "[+a+][+b+]",
		},
		{
			name:    "multibyte",
			oldLine: "héllo",
			newLine: "hello",
			wantOld: "h[-é-]llo",
			wantNew: "h[+e+]llo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOld, gotNew := charDiff(tt.oldLine, tt.newLine, config.Default.Markers)
			if gotOld != tt.wantOld {
				t.Errorf("charDiff(...) old = %q, want %q", gotOld, tt.wantOld)
			}
			if gotNew != tt.wantNew {
				t.Errorf("charDiff(...) new = %q, want %q", gotNew, tt.wantNew)
			}
		})
	}
}

func TestCharDiffCustomMarkers(t *testing.T) {
	m := config.MarkerSet{DeleteStart: "«", DeleteEnd: "»", InsertStart: "⟨", InsertEnd: "⟩"}
	gotOld, gotNew := charDiff("abc", "abd", m)
	if want := "ab«c»"; gotOld != want {
		t.Errorf("charDiff(...) old = %q, want %q", gotOld, want)
	}
	if want := "ab⟨d⟩"; gotNew != want {
		t.Errorf("charDiff(...) new = %q, want %q", gotNew, want)
	}
}
