package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md escapes raw HTML in the source by default, which is the sanitization
// we need for owner-authored content shown to visitors.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown renders one markdown fragment to HTML.
func Markdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownAll renders each fragment, skipping empties.
func MarkdownAll(srcs []string) ([]string, error) {
	out := make([]string, 0, len(srcs))
	for _, s := range srcs {
		h, err := Markdown(s)
		if err != nil {
			return nil, err
		}
		if h == "" {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}
