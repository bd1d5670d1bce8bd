package csvtext

import (
	"strings"
	"unicode"
)

// SplitLines splits text on CRLF, LF and CR line terminators.
//
// A trailing terminator yields a final empty line, and empty text yields a
// single empty line, so the result is never empty.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, text[start:])
}

// isBlank reports whether a line has nothing but whitespace.
// The byte order mark counts as whitespace here and NEL (U+0085) does not,
// the same set a browser trims.
func isBlank(line string) bool {
	return strings.TrimFunc(line, isTrimmable) == ""
}

func isTrimmable(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
