package commentdoc

import (
	"strings"
	"unicode/utf8"
)

// Mode selects the prefix vocabulary used by [Classify].
type Mode int

const (
	// ModeEnum classifies lines of an annotated enumeration.
	ModeEnum Mode = iota
	// ModeConfig classifies lines of an annotated configuration script.
	ModeConfig
	// ModeFunction classifies lines of annotated function declarations.
	ModeFunction
)

func (m Mode) String() string {
	switch m {
	case ModeEnum:
		return "enum"
	case ModeConfig:
		return "config"
	case ModeFunction:
		return "function"
	}

	return "unknown"
}

// Kind is the structural role of a classified line.
type Kind int

const (
	// KindPlain is a line that matches no rule and is ignored.
	KindPlain Kind = iota
	// KindSkip is a line that must be dropped before any other rule applies
	// (configuration separators such as "---").
	KindSkip
	// KindScopeStart opens the documented declaration block.
	KindScopeStart
	// KindScopeEnd closes the documented declaration block.
	KindScopeEnd
	// KindHeading opens a category (enum) or switches the target document
	// (config).
	KindHeading
	// KindDoc is a doc comment content line.
	KindDoc
	// KindBlank is an empty doc comment marker.
	KindBlank
	// KindEmpty is a line holding nothing but whitespace.
	KindEmpty
	// KindDeclaration is a declaration that names the preceding doc block.
	KindDeclaration
)

var kindNames = [...]string{
	KindPlain:       "plain",
	KindSkip:        "skip",
	KindScopeStart:  "scope-start",
	KindScopeEnd:    "scope-end",
	KindHeading:     "heading",
	KindDoc:         "doc",
	KindBlank:       "blank",
	KindEmpty:       "empty",
	KindDeclaration: "declaration",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Target identifies one of the five configuration documents.
type Target int

const (
	// TargetNone means no recognized heading has been seen yet.
	TargetNone Target = iota
	// TargetOverview collects the top-level configuration reference.
	TargetOverview
	// TargetGeneral collects general configuration.
	TargetGeneral
	// TargetNodeTypes collects node type configuration.
	TargetNodeTypes
	// TargetLayouts collects layout configuration.
	TargetLayouts
	// TargetModes collects mode configuration.
	TargetModes
)

var targetNames = [...]string{
	TargetNone:      "none",
	TargetOverview:  "overview",
	TargetGeneral:   "general",
	TargetNodeTypes: "node-types",
	TargetLayouts:   "layouts",
	TargetModes:     "modes",
}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return "unknown"
	}

	return targetNames[t]
}

// Targets returns every selectable [Target], in document order.
func Targets() []Target {
	return []Target{TargetOverview, TargetGeneral, TargetNodeTypes, TargetLayouts, TargetModes}
}

// ParseTarget returns the [Target] named s.
func ParseTarget(s string) (Target, bool) {
	for _, t := range Targets() {
		if t.String() == s {
			return t, true
		}
	}

	return TargetNone, false
}

// Headings that select a configuration target. Order does not matter; the
// prefixes are disjoint.
var configHeadings = []struct {
	prefix string
	target Target
}{
	{"-- # Configuration ", TargetOverview},
	{"-- ## Config ", TargetOverview},
	{"-- ## Function ", TargetOverview},
	{"-- ## On Load ", TargetOverview},
	{"-- ### General Configuration ", TargetGeneral},
	{"-- ### Node Types ", TargetNodeTypes},
	{"-- ### Layouts ", TargetLayouts},
	{"-- ### Modes ", TargetModes},
}

const (
	enumCategoryPrefix = "/// ### "
	enumDocPrefix      = "/// "
	enumDocMarker      = "///"

	configSkipPrefix = "---"
	configDocPrefix  = "-- "
	configDocMarker  = "--"
	configHeading    = "-- #"

	funcDocMarker = "///"
)

// Token is the result of classifying one line.
//
// Text carries the payload relevant to Kind: the stripped comment content,
// the category title, or the declaration name. Target is only set for
// [KindHeading] tokens in [ModeConfig].
type Token struct {
	Text   string
	Kind   Kind
	Target Target
}

// Vocabulary holds the project-specific names the classifier looks for.
type Vocabulary struct {
	// Enum is the name of the documented enumeration.
	Enum string
	// Namespace is the reserved prefix of configuration declarations.
	Namespace string
	// FuncKeyword introduces a documented function declaration.
	FuncKeyword string
}

// DefaultVocabulary returns the xplr conventions.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Enum:        "ExternalMsg",
		Namespace:   "xplr.",
		FuncKeyword: "pub fn",
	}
}

// Classifier classifies lines for a single [Mode].
//
// Create instances with [NewClassifier]. A Classifier holds no per-line
// state and is safe for concurrent use.
type Classifier struct {
	vocab      Vocabulary
	enumOpener string
	mode       Mode
}

// NewClassifier returns a [Classifier] for mode. Empty fields of vocab fall
// back to [DefaultVocabulary].
func NewClassifier(mode Mode, vocab Vocabulary) *Classifier {
	def := DefaultVocabulary()
	if vocab.Enum == "" {
		vocab.Enum = def.Enum
	}

	if vocab.Namespace == "" {
		vocab.Namespace = def.Namespace
	}

	if vocab.FuncKeyword == "" {
		vocab.FuncKeyword = def.FuncKeyword
	}

	return &Classifier{
		mode:       mode,
		vocab:      vocab,
		enumOpener: "pub enum " + vocab.Enum + " {",
	}
}

// Classify classifies line using [DefaultVocabulary].
func Classify(line string, mode Mode) Token {
	return NewClassifier(mode, DefaultVocabulary()).Classify(line)
}

// Mode returns the mode the classifier was built for.
func (c *Classifier) Mode() Mode {
	return c.mode
}

// Classify returns the [Token] for line. Every line gets a token; lines
// matching no rule are [KindPlain].
func (c *Classifier) Classify(line string) Token {
	switch c.mode {
	case ModeEnum:
		return c.classifyEnum(line)
	case ModeConfig:
		return c.classifyConfig(line)
	case ModeFunction:
		return c.classifyFunction(line)
	}

	return Token{Kind: KindPlain, Text: line}
}

func (c *Classifier) classifyEnum(line string) Token {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, c.enumOpener):
		return Token{Kind: KindScopeStart}

	case line == "}":
		return Token{Kind: KindScopeEnd}

	case strings.HasPrefix(line, enumCategoryPrefix):
		title := strings.TrimPrefix(line, enumCategoryPrefix)
		title = strings.TrimSpace(strings.TrimRight(title, "-"))

		return Token{Kind: KindHeading, Text: title}

	case strings.HasPrefix(line, enumDocPrefix):
		text := strings.TrimLeft(line, "/ ")

		return Token{Kind: KindDoc, Text: strings.TrimSpace(text)}

	case line == "" || line == enumDocMarker:
		return Token{Kind: KindBlank}

	case strings.HasSuffix(line, ","):
		return Token{Kind: KindDeclaration, Text: variantName(line)}
	}

	return Token{Kind: KindPlain, Text: line}
}

// variantName returns the identifier of an enum variant line, dropping any
// payload and the trailing separator.
func variantName(line string) string {
	if i := strings.IndexAny(line, ",({"); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

func (c *Classifier) classifyConfig(line string) Token {
	if strings.HasPrefix(line, configSkipPrefix) {
		return Token{Kind: KindSkip}
	}

	var tok Token

	switch {
	case strings.HasPrefix(line, configDocPrefix):
		text := line[len(configDocPrefix):]
		if strings.HasPrefix(line, configHeading) && strings.HasSuffix(line, configDocMarker) {
			text = "\n" + strings.TrimSpace(strings.TrimRight(text, "-")) + "\n"
		}

		tok = Token{Kind: KindDoc, Text: text}

	case line == configDocMarker:
		tok = Token{Kind: KindBlank}

	case strings.HasPrefix(line, c.vocab.Namespace):
		tok = Token{Kind: KindDeclaration, Text: strings.Fields(line)[0]}

	case strings.TrimSpace(line) == "":
		tok = Token{Kind: KindEmpty}

	default:
		tok = Token{Kind: KindPlain, Text: line}
	}

	for _, h := range configHeadings {
		if strings.HasPrefix(line, h.prefix) {
			tok.Kind = KindHeading
			tok.Target = h.target

			break
		}
	}

	return tok
}

func (c *Classifier) classifyFunction(line string) Token {
	switch {
	case strings.HasPrefix(line, funcDocMarker):
		// The marker and the single column after it are dropped.
		text := line[len(funcDocMarker):]
		_, size := utf8.DecodeRuneInString(text)

		return Token{Kind: KindDoc, Text: text[size:]}

	case strings.HasPrefix(line, c.vocab.FuncKeyword+" "):
		return Token{Kind: KindDeclaration, Text: functionName(line[len(c.vocab.FuncKeyword):])}
	}

	return Token{Kind: KindPlain, Text: line}
}

// functionName returns the first token of rest, cut at the start of a
// generic or parameter list.
func functionName(rest string) string {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}

	name := fields[0]
	if i := strings.IndexAny(name, "(<"); i >= 0 {
		name = name[:i]
	}

	return name
}
