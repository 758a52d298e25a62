package commentdoc

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading found in rendered markdown.
type Heading struct {
	Text  string
	Level int
}

// Outline parses markdown and returns its headings in document order.
// Headings inside code blocks are not reported.
func Outline(markdown string) []Heading {
	src := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []Heading

	//nolint:errcheck // The walker never returns an error.
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		out = append(out, Heading{Level: h.Level, Text: headingText(h, src)})

		return ast.WalkSkipChildren, nil
	})

	return out
}

// CountHeadings returns the number of headings at level in outline.
func CountHeadings(outline []Heading, level int) int {
	n := 0

	for _, h := range outline {
		if h.Level == level {
			n++
		}
	}

	return n
}

func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer

	lines := h.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}

	return string(bytes.TrimSpace(buf.Bytes()))
}
