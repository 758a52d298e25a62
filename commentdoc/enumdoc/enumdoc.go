// Package enumdoc extracts a [commentdoc.Document] from an annotated
// enumeration.
//
// Extraction is disabled until the enumeration's opening line
// ("pub enum <Name> {") is seen, and stops permanently at the first line
// consisting of a single "}". Nesting depth is not tracked, so a nested
// closing brace before the real one ends extraction early.
//
// Inside the enumeration:
//
//   - "/// ### Title ---" opens a new [commentdoc.Category].
//   - "/// text" appends text to the current section body.
//   - "///" and empty lines append an empty string.
//   - a line ending with "," titles the current section with the variant
//     name and opens a new untitled section.
package enumdoc

import (
	"iter"

	"go.jacobcolvin.com/commentdoc/commentdoc"
)

// Option configures extraction.
type Option func(*extractor)

// WithVocabulary sets the vocabulary used to recognize the enumeration.
func WithVocabulary(v commentdoc.Vocabulary) Option {
	return func(e *extractor) {
		e.classifier = commentdoc.NewClassifier(commentdoc.ModeEnum, v)
	}
}

// Extract builds a [commentdoc.Document] from lines.
func Extract(lines iter.Seq[string], opts ...Option) *commentdoc.Document {
	e := &extractor{
		classifier: commentdoc.NewClassifier(commentdoc.ModeEnum, commentdoc.DefaultVocabulary()),
		doc:        &commentdoc.Document{},
		cat:        -1,
	}

	for _, opt := range opts {
		opt(e)
	}

	for line := range lines {
		if !e.feed(line) {
			break
		}
	}

	return e.doc
}

// extractor holds the state of one extraction pass. cat and sec index the
// current category and section; cat is -1 until the first heading.
type extractor struct {
	classifier *commentdoc.Classifier
	doc        *commentdoc.Document
	cat        int
	sec        int
	reading    bool
}

// feed consumes one line and reports whether extraction should continue.
func (e *extractor) feed(line string) bool {
	tok := e.classifier.Classify(line)

	if !e.reading {
		e.reading = tok.Kind == commentdoc.KindScopeStart
		return true
	}

	switch tok.Kind {
	case commentdoc.KindScopeEnd:
		return false

	case commentdoc.KindHeading:
		e.doc.Categories = append(e.doc.Categories, commentdoc.NewCategory(tok.Text))
		e.cat = len(e.doc.Categories) - 1
		e.sec = 0

	case commentdoc.KindDoc, commentdoc.KindBlank, commentdoc.KindEmpty:
		e.appendBody(tok.Text)

	case commentdoc.KindDeclaration:
		e.declare(tok.Text)

	case commentdoc.KindPlain, commentdoc.KindSkip, commentdoc.KindScopeStart:
	}

	return true
}

// appendBody appends text to the current section. Lines seen before the
// first category have nowhere to go and are dropped.
func (e *extractor) appendBody(text string) {
	if e.cat < 0 {
		return
	}

	sec := &e.doc.Categories[e.cat].Sections[e.sec]
	sec.Body = append(sec.Body, text)
}

// declare titles the current section and opens the next one.
func (e *extractor) declare(name string) {
	if e.cat < 0 {
		return
	}

	cat := &e.doc.Categories[e.cat]
	cat.Sections[e.sec].Title = name
	cat.Sections = append(cat.Sections, commentdoc.Section{})
	e.sec = len(cat.Sections) - 1
}
