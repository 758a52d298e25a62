package commentdoc_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/commentdoc/commentdoc"
	"go.jacobcolvin.com/commentdoc/stringtest"
)

func navigationDoc() *commentdoc.Document {
	return &commentdoc.Document{
		Categories: []commentdoc.Category{
			{
				Title: "Navigation",
				Sections: []commentdoc.Section{
					{Title: "FocusPrevious", Body: []string{"", "Move up."}},
					{},
				},
			},
		},
	}
}

func TestRenderMessages(t *testing.T) {
	t.Parallel()

	got, err := commentdoc.RenderMessages(navigationDoc(), nil)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"# Full List of Messages",
		"",
		"xplr [messages][1] categorized based on their purpose.",
		"",
		"## Categories",
		"",
		"- [Navigation](#navigation)",
		"",
		"### Navigation",
		"",
		"#### FocusPrevious",
		"",
		"",
		"Move up.",
		"",
		"",
		"## Also See:",
		"",
		"- [Message][1]",
		"",
		"[1]: message.md",
		"",
	)
	assert.Equal(t, want, got)
}

func TestRenderMessagesHeadings(t *testing.T) {
	t.Parallel()

	doc := &commentdoc.Document{
		Categories: []commentdoc.Category{
			{
				Title: "Reading Input",
				Sections: []commentdoc.Section{
					{Body: []string{"Preamble text."}},
					{Title: "SetInputBuffer", Body: []string{"Set the buffer."}},
					{Title: "ResetInputBuffer", Body: []string{"Reset it."}},
					{},
				},
			},
			{
				Title: "Quit",
				Sections: []commentdoc.Section{
					{Title: "Terminate"},
					{},
				},
			},
		},
	}

	got, err := commentdoc.RenderMessages(doc, nil)
	require.NoError(t, err)

	assert.Contains(t, got, stringtest.JoinLF(
		"- [Reading Input](#reading-input)",
		"- [Quit](#quit)",
	))
	assert.NotContains(t, got, "Preamble text.")

	outline := commentdoc.Outline(got)
	assert.Equal(t, 2, commentdoc.CountHeadings(outline, 3))
	assert.Equal(t, 3, commentdoc.CountHeadings(outline, 4))

	var level3 []string

	for _, h := range outline {
		if h.Level == 3 {
			level3 = append(level3, h.Text)
		}
	}

	assert.Equal(t, []string{"Reading Input", "Quit"}, level3)

	again, err := commentdoc.RenderMessages(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestRenderMessagesTemplate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		template string
		want     string
		wantErr  bool
	}{
		"document fields": {
			template: "{{ range .Document.Categories }}{{ .Title }};{{ end }}",
			want:     "Navigation;\n",
		},
		"toc only": {
			template: "{{ .TOC }}\n\n\n",
			want:     "- [Navigation](#navigation)\n",
		},
		"unknown field": {
			template: "{{ .Missing }}",
			wantErr:  true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := commentdoc.ParseMessagesTemplate(tc.template)
			require.NoError(t, err)

			got, err := commentdoc.RenderMessages(navigationDoc(), tmpl)
			if tc.wantErr {
				require.ErrorIs(t, err, commentdoc.ErrRender)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMessagesTemplateError(t *testing.T) {
	t.Parallel()

	_, err := commentdoc.ParseMessagesTemplate("{{ .TOC")
	require.ErrorIs(t, err, commentdoc.ErrRender)
}

func TestRenderParagraphs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input commentdoc.Paragraphs
		want  string
	}{
		"nothing collected": {
			input: commentdoc.Paragraphs{{}},
			want:  "\n",
		},
		"paragraphs separated by blank lines": {
			input: commentdoc.Paragraphs{{"a", "b"}, {"c"}, {}},
			want:  "a\nb\n\nc\n",
		},
		"padded heading": {
			input: commentdoc.Paragraphs{{"\n### Modes\n", "", "Text."}},
			want:  "\n### Modes\n\n\nText.\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, commentdoc.RenderParagraphs(tc.input))
		})
	}
}

func TestRenderFunctions(t *testing.T) {
	t.Parallel()

	docs := &commentdoc.FunctionDocs{
		Functions: []commentdoc.Function{
			{Name: "version", Doc: []string{"Get the version.", "", "Type: function()"}},
			{Name: "clone", Doc: []string{"Clone a value."}},
		},
		Orphan: []string{"Trailing."},
	}

	got := commentdoc.RenderFunctions(docs, "xplr.util.")

	want := stringtest.JoinLF(
		"",
		"### xplr.util.version",
		"",
		"Get the version.",
		"",
		"Type: function()",
		"",
		"### xplr.util.clone",
		"",
		"Clone a value.",
		"Trailing.",
		"",
	)
	assert.Equal(t, want, got)

	outline := commentdoc.Outline(got)
	assert.Equal(t, []commentdoc.Heading{
		{Level: 3, Text: "xplr.util.version"},
		{Level: 3, Text: "xplr.util.clone"},
	}, outline)

	assert.Empty(t, commentdoc.RenderFunctions(nil, "xplr.util."))
}

func TestOutlineIgnoresCodeBlocks(t *testing.T) {
	t.Parallel()

	md := stringtest.JoinLF(
		"# Title",
		"",
		"```lua",
		"# not a heading",
		"```",
		"",
		"## Next",
	)

	assert.Equal(t, []commentdoc.Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "Next"},
	}, commentdoc.Outline(md))
}

func TestSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reading-input", commentdoc.Slug("Reading Input"))
	assert.Equal(t, "navigation", commentdoc.Slug("Navigation"))
}

func TestLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"empty": {
			input: "",
			want:  nil,
		},
		"no terminator": {
			input: "a",
			want:  []string{"a"},
		},
		"final terminator": {
			input: stringtest.JoinLF("a", "", "b", ""),
			want:  []string{"a", "", "b"},
		},
		"crlf": {
			input: stringtest.JoinCRLF("///", "/// text", "Foo,", ""),
			want:  []string{"///", "/// text", "Foo,"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, slices.Collect(commentdoc.Lines(tc.input)))
		})
	}
}

func TestModel(t *testing.T) {
	t.Parallel()

	cat := commentdoc.NewCategory("Search")
	require.Len(t, cat.Sections, 1)
	assert.False(t, cat.Sections[0].Titled())
	assert.Empty(t, cat.TitledSections())

	p := commentdoc.Paragraphs{{"a", "b"}, {"c"}, {}}
	assert.Equal(t, 3, p.Lines())
}
