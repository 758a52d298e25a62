package commentdoc

// Section is one unit of documentation within a [Category].
//
// A Section with an empty Title is a preamble: free text that appeared before
// the first declaration inside its category. Body keeps blank lines as empty
// strings.
type Section struct {
	Title string
	Body  []string
}

// Titled reports whether the section was closed by a declaration.
func (s Section) Titled() bool {
	return s.Title != ""
}

// Category groups related declarations under a heading.
//
// Sections is never empty; create instances with [NewCategory].
type Category struct {
	Title    string
	Sections []Section
}

// NewCategory returns a [Category] holding a single untitled [Section].
func NewCategory(title string) Category {
	return Category{
		Title:    title,
		Sections: []Section{{}},
	}
}

// TitledSections returns the sections that carry a declaration title, in
// encounter order.
func (c Category) TitledSections() []Section {
	var out []Section

	for _, sec := range c.Sections {
		if sec.Titled() {
			out = append(out, sec)
		}
	}

	return out
}

// Document is the tree extracted from an enumeration stream.
type Document struct {
	Categories []Category
}

// Paragraphs is a document extracted from a configuration stream: an ordered
// list of paragraphs, each an ordered list of lines.
type Paragraphs [][]string

// Lines returns the number of lines across all paragraphs.
func (p Paragraphs) Lines() int {
	n := 0
	for _, para := range p {
		n += len(para)
	}

	return n
}

// Function is a documented function declaration.
type Function struct {
	Name string
	Doc  []string
}

// FunctionDocs is the result of extracting a function stream.
//
// Orphan holds a trailing doc block that was never followed by a
// declaration. It is nil when every block was flushed.
type FunctionDocs struct {
	Functions []Function
	Orphan    []string
}
