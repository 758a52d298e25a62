// Package commentdoc compiles documentation embedded in line comments into a
// typed document tree and renders that tree as markdown.
//
// The compiler is deliberately small. It never parses the host language;
// it only recognizes a fixed set of line prefixes and suffixes and treats
// everything else as noise. Three source conventions are supported, one per
// [Mode]:
//
//   - [ModeEnum]: a declarative enumeration whose variants carry triple-slash
//     doc comments. Lines of the form "/// ### Title" open a [Category];
//     every variant line ending with "," closes the current [Section] and
//     gives it the variant name as title.
//   - [ModeConfig]: a scripting configuration file using "-- " line comments
//     with markdown heading levels. Specific headings route subsequent
//     comments into one of five [Paragraphs] documents, selected by
//     [Target].
//   - [ModeFunction]: function declarations preceded by triple-slash doc
//     blocks, producing an ordered list of [Function] records.
//
// # Pipeline
//
// Data flows one way:
//
//	raw lines -> [Token] (via [Classify]) -> document tree -> markdown
//
// [Lines] splits source text into a line sequence. The extractors in the
// enumdoc, luadoc and fndoc subpackages consume that sequence and build the
// tree. [RenderMessages], [RenderParagraphs] and [RenderFunctions] turn the
// trees into markdown, and [Outline] reads the heading structure back out
// of rendered markdown.
//
// # Failure Model
//
// Extraction and rendering are total: unexpected lines are classified as
// [KindPlain] and ignored, content appearing before the first recognized
// heading is dropped, and unterminated scopes simply run to end of input.
// Only template execution in [RenderMessages] can return an error.
//
// # Vocabulary
//
// The markers that name things in the host project (the documented enum, the
// reserved configuration namespace, the function keyword) are carried by a
// [Vocabulary]. [DefaultVocabulary] returns the conventions of the xplr file
// explorer, which this tool was written for.
package commentdoc
