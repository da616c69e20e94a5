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
	"html"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/promptdiff/promptdiff"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		opts     []Option
		want     string
	}{
		{
			name: "one-div-per-classification",
			old:  "same\nremove me",
			new:  "same\nadded",
			want: "<div class=\"diff\">\n" +
				"<div class=\"unchanged\">same</div>\n" +
				"<div class=\"remove\">remove me</div>\n" +
				"<div class=\"add\">added</div>\n" +
				"<div class=\"stats\">1 additions, 1 deletions, 0 modifications, 1 unchanged</div>\n" +
				"</div>\n",
		},
		{
			name: "modification-with-highlight-spans",
			old:  "a & b",
			new:  "a & c",
			want: "<div class=\"diff\">\n" +
				"<div class=\"modify\"><del>a &amp; <span class=\"highlight-remove\">b</span></del><ins>a &amp; <span class=\"highlight-add\">c</span></ins></div>\n" +
				"<div class=\"stats\">0 additions, 0 deletions, 1 modifications, 0 unchanged</div>\n" +
				"</div>\n",
		},
		{
			name: "modification-without-highlight",
			old:  "color",
			new:  "colour",
			opts: []Option{NoHighlight()},
			want: "<div class=\"diff\">\n" +
				"<div class=\"modify\">colour</div>\n" +
				"<div class=\"stats\">0 additions, 0 deletions, 1 modifications, 0 unchanged</div>\n" +
				"</div>\n",
		},
		{
			name: "line-numbers",
			old:  "a",
			new:  "a",
			opts: []Option{LineNumbers()},
			want: "<div class=\"diff\">\n" +
				"<div class=\"unchanged\"><span class=\"lineno\">1</span>a</div>\n" +
				"<div class=\"stats\">0 additions, 0 deletions, 0 modifications, 1 unchanged</div>\n" +
				"</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTML(promptdiff.Diff(tt.old, tt.new), tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("HTML(...) result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHTMLEscaping(t *testing.T) {
	const payload = "<script>alert('x')</script>"

	got := HTML(promptdiff.Diff("safe", payload))
	if strings.Contains(got, payload) {
		t.Errorf("HTML(...) contains unescaped user content:\n%s", got)
	}
	if want := "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"; !strings.Contains(got, want) {
		t.Errorf("HTML(...) is missing escaped content %q:\n%s", want, got)
	}
	// Entity-decoding the output must recover the original text.
	if !strings.Contains(html.UnescapeString(got), payload) {
		t.Errorf("entity-decoding HTML(...) doesn't recover the input:\n%s", got)
	}
}

func TestHTMLEscapingWithHighlight(t *testing.T) {
	// The modified pair contains every character the escaper rewrites; none of them
	// may survive escaping, and the highlight spans must still be intact.
	got := HTML(promptdiff.Diff(`a <b> & "c" 'd'`, `a <b> & "c" 'e'`))
	for _, forbidden := range []string{"<b>", `"c"`, "'d'", "'e'"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("HTML(...) contains unescaped fragment %q:\n%s", forbidden, got)
		}
	}
	for _, want := range []string{
		`<span class="highlight-remove">d</span>`,
		`<span class="highlight-add">e</span>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML(...) is missing highlight span %q:\n%s", want, got)
		}
	}
}
