package commentdoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ErrRender indicates a page template could not be parsed or executed.
var ErrRender = errors.New("render")

// DefaultMessagesTemplate is the page layout used by [RenderMessages] when no
// template is given. It receives a [MessagesPage].
const DefaultMessagesTemplate = `# Full List of Messages

xplr [messages][1] categorized based on their purpose.

## Categories

{{ .TOC }}

{{ .Messages }}

## Also See:

- [Message][1]

[1]: message.md`

var defaultMessagesTemplate = template.Must(template.New("messages").Parse(DefaultMessagesTemplate))

// MessagesPage is the data handed to a messages page template.
type MessagesPage struct {
	// Document is the extracted tree, for templates that lay it out
	// themselves.
	Document *Document
	// TOC is the rendered table of contents, one link per category.
	TOC string
	// Messages is the rendered body: a heading per category and a
	// sub-heading per titled section.
	Messages string
}

// ParseMessagesTemplate parses text as a messages page template.
func ParseMessagesTemplate(text string) (*template.Template, error) {
	tmpl, err := template.New("messages").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	return tmpl, nil
}

// Slug returns the markdown anchor for a heading title.
func Slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// RenderMessages renders doc as a markdown page. A nil tmpl selects
// [DefaultMessagesTemplate].
//
// Untitled sections are never rendered; each titled section produces a
// "####" sub-heading followed by its body lines.
func RenderMessages(doc *Document, tmpl *template.Template) (string, error) {
	if tmpl == nil {
		tmpl = defaultMessagesTemplate
	}

	if doc == nil {
		doc = &Document{}
	}

	toc := make([]string, 0, len(doc.Categories))
	msgs := []string{}

	for _, cat := range doc.Categories {
		toc = append(toc, fmt.Sprintf("- [%s](#%s)", cat.Title, Slug(cat.Title)))
		msgs = append(msgs, "### "+cat.Title, "")

		for _, sec := range cat.TitledSections() {
			msgs = append(msgs, "#### "+sec.Title, "")
			msgs = append(msgs, sec.Body...)
			msgs = append(msgs, "")
		}
	}

	page := MessagesPage{
		Document: doc,
		TOC:      strings.Join(toc, "\n"),
		Messages: strings.Join(msgs, "\n"),
	}

	var buf bytes.Buffer

	err := tmpl.Execute(&buf, page)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}

	return withTrailingNewline(buf.String()), nil
}

// RenderParagraphs joins the lines of each paragraph with newlines and the
// paragraphs with blank lines. Empty paragraphs are skipped.
func RenderParagraphs(p Paragraphs) string {
	parts := make([]string, 0, len(p))

	for _, para := range p {
		if len(para) == 0 {
			continue
		}

		parts = append(parts, strings.Join(para, "\n"))
	}

	return withTrailingNewline(strings.Join(parts, "\n\n"))
}

// RenderFunctions renders one "###" heading per function, named prefix plus
// the function name, followed by its doc lines. A trailing orphan block is
// rendered last without a heading.
func RenderFunctions(docs *FunctionDocs, prefix string) string {
	if docs == nil {
		return ""
	}

	var sb strings.Builder

	for _, fn := range docs.Functions {
		sb.WriteString("\n### ")
		sb.WriteString(prefix)
		sb.WriteString(fn.Name)
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(fn.Doc, "\n"))
		sb.WriteByte('\n')
	}

	if docs.Orphan != nil {
		sb.WriteString(strings.Join(docs.Orphan, "\n"))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func withTrailingNewline(s string) string {
	return strings.TrimRight(s, "\n") + "\n"
}
