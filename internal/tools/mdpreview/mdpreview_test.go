package mdpreview

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "heading",
			source:   "# Title",
			expected: []string{"<h1>Title</h1>"},
		},
		{
			name:     "emphasis and code",
			source:   "some *em* and `code`",
			expected: []string{"<em>em</em>", "<code>code</code>"},
		},
		{
			name:     "gfm strikethrough",
			source:   "~~gone~~",
			expected: []string{"<del>gone</del>"},
		},
		{
			name:     "gfm table",
			source:   "| a | b |\n| - | - |\n| 1 | 2 |",
			expected: []string{"<table>", "<th>a</th>", "<td>2</td>"},
		},
		{
			name:     "autolink",
			source:   "see https://example.com for details",
			expected: []string{`<a href="https://example.com"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			for _, want := range tt.expected {
				if !strings.Contains(html, want) {
					t.Errorf("output missing %q:\n%s", want, html)
				}
			}
		})
	}
}

func TestToHTMLEmptySource(t *testing.T) {
	html, err := ToHTML("")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("empty source should produce no markup, got %q", html)
	}
}
