package promptdiff_test

import (
	"fmt"

	"github.com/promptdiff/promptdiff"
)

// Compare two versions of a prompt. The reworded first line is close enough to its
// predecessor to come back as a single modification instead of a delete/insert pair.
func ExampleDiff() {
	old := `You are a helpful assistant.
Answer briefly.`

	new := `You are a very helpful AI assistant.
Answer briefly.
Cite sources.`

	result := promptdiff.Diff(old, new)
	for _, ln := range result.Lines {
		fmt.Printf("%s %q\n", ln.Kind, ln.Content)
	}
	// Output:
	// modify "You are a very helpful AI assistant."
	// unchanged "Answer briefly."
	// add "Cite sources."
}

// Whitespace-insensitive comparison never alters the displayed text, only the
// equality check.
func ExampleIgnoreWhitespace() {
	result := promptdiff.Diff("Answer   briefly.", "Answer briefly.", promptdiff.IgnoreWhitespace())
	fmt.Println(result.HasChanges())
	fmt.Printf("%q\n", result.Lines[0].Content)
	// Output:
	// false
	// "Answer   briefly."
}
