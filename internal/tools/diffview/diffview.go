package diffview

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff between two texts with three lines of
// context, labelled with the given names.
func Unified(before, after, beforeName, afterName string) (string, error) {
	if beforeName == "" {
		beforeName = "before"
	}
	if afterName == "" {
		afterName = "after"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: beforeName,
		ToFile:   afterName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("compute diff: %w", err)
	}
	if text == "" {
		text = "(no differences)\n"
	}
	return text, nil
}

// Similarity returns a 0..1 ratio of how alike the two texts are,
// line-wise.
func Similarity(before, after string) float64 {
	matcher := difflib.NewMatcher(difflib.SplitLines(before), difflib.SplitLines(after))
	return matcher.Ratio()
}
