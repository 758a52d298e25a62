// Package luadoc extracts configuration documentation from an annotated Lua
// configuration script.
//
// The script documents itself with "-- " line comments that use markdown
// heading levels. Specific headings select which of five documents
// ([commentdoc.Target]) subsequent lines are routed into; the selection
// persists until another recognized heading. Lines before the first
// recognized heading are dropped.
//
// Within the selected document:
//
//   - comment lines are appended to the current paragraph with the "-- "
//     prefix removed. A comment heading framed by dashes
//     ("-- ## Title ---") is padded with blank lines so it stands apart.
//   - a declaration in the reserved namespace ("xplr.config.x = ...")
//     prepends a "####" sub-heading, built from the declaration's first
//     token, to the current paragraph. A declaration met while the current
//     paragraph is empty is treated like any other code line and dropped.
//   - a blank line ends the current paragraph if it holds anything.
//   - "---" lines are dropped before any other rule applies.
package luadoc

import (
	"iter"

	"go.jacobcolvin.com/commentdoc/commentdoc"
)

// Set holds the five configuration documents produced by [Extract].
type Set struct {
	docs map[commentdoc.Target]*accumulator
}

// accumulator is one target's paragraph list and its current paragraph.
type accumulator struct {
	paragraphs commentdoc.Paragraphs
	cur        int
}

func newSet() *Set {
	s := &Set{docs: make(map[commentdoc.Target]*accumulator)}
	for _, t := range commentdoc.Targets() {
		s.docs[t] = &accumulator{paragraphs: commentdoc.Paragraphs{{}}}
	}

	return s
}

// Paragraphs returns the document collected for t. It returns nil for
// [commentdoc.TargetNone].
func (s *Set) Paragraphs(t commentdoc.Target) commentdoc.Paragraphs {
	acc, ok := s.docs[t]
	if !ok {
		return nil
	}

	return acc.paragraphs
}

// Render renders the document collected for t.
func (s *Set) Render(t commentdoc.Target) string {
	return commentdoc.RenderParagraphs(s.Paragraphs(t))
}

func (a *accumulator) current() []string {
	return a.paragraphs[a.cur]
}

func (a *accumulator) appendLine(line string) {
	a.paragraphs[a.cur] = append(a.paragraphs[a.cur], line)
}

func (a *accumulator) prependLine(line string) {
	a.paragraphs[a.cur] = append([]string{line}, a.paragraphs[a.cur]...)
}

func (a *accumulator) breakParagraph() {
	a.paragraphs = append(a.paragraphs, []string{})
	a.cur = len(a.paragraphs) - 1
}

// Option configures extraction.
type Option func(*extractor)

// WithVocabulary sets the vocabulary used to recognize namespace
// declarations.
func WithVocabulary(v commentdoc.Vocabulary) Option {
	return func(e *extractor) {
		e.classifier = commentdoc.NewClassifier(commentdoc.ModeConfig, v)
	}
}

// Extract routes lines into a [Set].
func Extract(lines iter.Seq[string], opts ...Option) *Set {
	e := &extractor{
		classifier: commentdoc.NewClassifier(commentdoc.ModeConfig, commentdoc.DefaultVocabulary()),
		set:        newSet(),
	}

	for _, opt := range opts {
		opt(e)
	}

	for line := range lines {
		e.feed(line)
	}

	return e.set
}

type extractor struct {
	classifier *commentdoc.Classifier
	set        *Set
	target     commentdoc.Target
}

func (e *extractor) feed(line string) {
	tok := e.classifier.Classify(line)

	if tok.Kind == commentdoc.KindHeading {
		e.target = tok.Target
	}

	if e.target == commentdoc.TargetNone {
		return
	}

	acc := e.set.docs[e.target]

	switch tok.Kind {
	case commentdoc.KindHeading, commentdoc.KindDoc, commentdoc.KindBlank:
		acc.appendLine(tok.Text)

	case commentdoc.KindDeclaration:
		if len(acc.current()) > 0 {
			acc.prependLine("\n#### " + tok.Text + "\n")
		}

	case commentdoc.KindEmpty:
		if len(acc.current()) > 0 {
			acc.breakParagraph()
		}

	case commentdoc.KindPlain, commentdoc.KindSkip, commentdoc.KindScopeStart, commentdoc.KindScopeEnd:
	}
}
