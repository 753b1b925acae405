package diffview

import (
	"strings"
	"testing"
)

func TestUnifiedShowsChangedLines(t *testing.T) {
	before := "alpha\nbravo\ncharlie\n"
	after := "alpha\nbraavo\ncharlie\n"

	diff, err := Unified(before, after, "a.txt", "b.txt")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	for _, want := range []string{"--- a.txt", "+++ b.txt", "-bravo", "+braavo"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
}

func TestUnifiedIdenticalInputs(t *testing.T) {
	diff, err := Unified("same\n", "same\n", "", "")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(diff, "no differences") {
		t.Errorf("identical inputs should report no differences, got:\n%s", diff)
	}
}

func TestUnifiedDefaultsLabels(t *testing.T) {
	diff, err := Unified("x\n", "y\n", "", "")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(diff, "--- before") || !strings.Contains(diff, "+++ after") {
		t.Errorf("default labels missing:\n%s", diff)
	}
}

func TestSimilarity(t *testing.T) {
	if ratio := Similarity("a\nb\nc\n", "a\nb\nc\n"); ratio != 1 {
		t.Errorf("identical texts should be 1.0, got %f", ratio)
	}
	if ratio := Similarity("a\nb\nc\n", "x\ny\nz\n"); ratio != 0 {
		t.Errorf("disjoint texts should be 0.0, got %f", ratio)
	}
	middle := Similarity("a\nb\nc\nd\n", "a\nb\nx\ny\n")
	if middle <= 0 || middle >= 1 {
		t.Errorf("partial overlap should land strictly between 0 and 1, got %f", middle)
	}
}
