package render_test

import (
	"fmt"

	"github.com/promptdiff/promptdiff"
	"github.com/promptdiff/promptdiff/render"
)

// A highlighted modification renders as two rows in inline output: the old line
// prefixed "-" and the new line prefixed "+", with the inserted characters wrapped in
// markers.
func ExampleInline() {
	result := promptdiff.Diff(
		"You are a helpful assistant.\nAnswer briefly.",
		"You are a very helpful AI assistant.\nAnswer briefly.",
	)
	fmt.Print(render.Inline(result))
	// Output:
	// - You are a helpful assistant.
	// + You are a [+v+][+e+][+r+][+y+][+ +]helpful [+A+][+I+][+ +]assistant.
	//   Answer briefly.
	//
	// 0 additions, 0 deletions, 1 modifications, 1 unchanged
}

// HTML output escapes content before translating highlight markers into spans.
func ExampleHTML() {
	result := promptdiff.Diff("a & b", "a & c")
	fmt.Print(render.HTML(result))
	// Output:
	// <div class="diff">
	// <div class="modify"><del>a &amp; <span class="highlight-remove">b</span></del><ins>a &amp; <span class="highlight-add">c</span></ins></div>
	// <div class="stats">0 additions, 0 deletions, 1 modifications, 0 unchanged</div>
	// </div>
}

func ExampleSideBySide() {
	result := promptdiff.Diff("keep\ndrop", "keep\nnew line")
	fmt.Print(render.SideBySide(result, render.Width(10)))
	// Output:
	// keep       | keep
	// drop       |
	//            | new line
	//
	// 1 additions, 1 deletions, 0 modifications, 1 unchanged
}
