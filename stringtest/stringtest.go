// Package stringtest provides helpers for writing multi-line source fixtures
// and expected output in tests.
package stringtest

import "strings"

// Input removes one leading and one trailing newline from s, then strips the
// indentation common to all non-blank lines. Whitespace-only lines become
// empty. Use it to write indented raw string fixtures.
//
// Example:
//
//	src := stringtest.Input(`
//		pub enum ExternalMsg {
//		    FocusNext,
//		}
//	`) // -> "pub enum ExternalMsg {\n    FocusNext,\n}"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	prefix := ""
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix = indent
			found = true

			continue
		}

		prefix = commonPrefix(prefix, indent)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"### Navigation",
//		"",
//		"#### FocusPrevious",
//	) // -> "### Navigation\n\n#### FocusPrevious"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings, for fixtures
// checked out with Windows line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
