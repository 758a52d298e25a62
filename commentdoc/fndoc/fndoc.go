// Package fndoc extracts documented functions from annotated source.
//
// Every line beginning with "///" is collected into a pending doc block.
// The next declaration line ("pub fn name(...)") flushes the pending block
// as a [commentdoc.Function] named after the declared function. Declarations
// without a pending block are ignored, and a block still pending at end of
// input is kept as [commentdoc.FunctionDocs.Orphan].
package fndoc

import (
	"iter"

	"go.jacobcolvin.com/commentdoc/commentdoc"
)

// Option configures extraction.
type Option func(*extractor)

// WithVocabulary sets the vocabulary used to recognize declarations.
func WithVocabulary(v commentdoc.Vocabulary) Option {
	return func(e *extractor) {
		e.classifier = commentdoc.NewClassifier(commentdoc.ModeFunction, v)
	}
}

// Extract collects documented functions from lines, in encounter order.
func Extract(lines iter.Seq[string], opts ...Option) *commentdoc.FunctionDocs {
	e := &extractor{
		classifier: commentdoc.NewClassifier(commentdoc.ModeFunction, commentdoc.DefaultVocabulary()),
		docs:       &commentdoc.FunctionDocs{},
	}

	for _, opt := range opts {
		opt(e)
	}

	for line := range lines {
		e.feed(line)
	}

	e.docs.Orphan = e.pending

	return e.docs
}

type extractor struct {
	classifier *commentdoc.Classifier
	docs       *commentdoc.FunctionDocs
	// pending is nil when no doc block is open.
	pending []string
}

func (e *extractor) feed(line string) {
	tok := e.classifier.Classify(line)

	switch tok.Kind {
	case commentdoc.KindDoc:
		e.pending = append(e.pending, tok.Text)

	case commentdoc.KindDeclaration:
		if e.pending == nil {
			return
		}

		e.docs.Functions = append(e.docs.Functions, commentdoc.Function{
			Name: tok.Text,
			Doc:  e.pending,
		})
		e.pending = nil

	case commentdoc.KindPlain, commentdoc.KindSkip, commentdoc.KindScopeStart, commentdoc.KindScopeEnd,
		commentdoc.KindHeading, commentdoc.KindBlank, commentdoc.KindEmpty:
	}
}
