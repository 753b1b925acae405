package mdpreview

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// ToHTML converts markdown source to an HTML fragment (GFM tables,
// strikethrough and autolinks enabled).
func ToHTML(source string) (string, error) {
	var out strings.Builder
	if err := converter.Convert([]byte(source), &out); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return out.String(), nil
}
