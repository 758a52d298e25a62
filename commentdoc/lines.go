package commentdoc

import (
	"iter"
	"strings"
)

// Lines returns the lines of text without their terminators. Both LF and
// CRLF endings are accepted. A final line terminator does not produce a
// trailing empty line.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !yield(line) {
				return
			}
		}
	}
}
