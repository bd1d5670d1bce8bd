package csvtext

import (
	"strings"
	"unicode/utf8"
)

// Parse splits text into rows using delim. Auto detects the delimiter first.
//
// Blank lines are dropped. Within a line, a double quote toggles quoted mode
// and a doubled quote inside quoted mode yields one literal quote. Delimiters
// inside quotes are kept as field content. Parse never fails; empty input
// returns an empty, non-nil Table.
func Parse(text string, delim Delimiter) Table {
	delim = delim.Resolve(text)

	table := Table{}
	for _, line := range SplitLines(text) {
		if isBlank(line) {
			continue
		}
		table = append(table, parseLine(line, delim))
	}
	return table
}

// ParseAuto detects the delimiter and parses text with it.
func ParseAuto(text string) (Table, Delimiter) {
	delim := DetectDelimiter(text)
	return Parse(text, delim), delim
}

// parseLine splits a single line into fields.
func parseLine(line string, delim Delimiter) Row {
	var (
		row      Row
		field    strings.Builder
		inQuotes bool
	)

	sc := newScanner(line)
	for sc.next() {
		switch r := sc.rune(); {
		case r == quote:
			if inQuotes && sc.peek() == quote {
				field.WriteRune(quote)
				sc.next()
			} else {
				inQuotes = !inQuotes
			}
		case r == rune(delim) && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		default:
			field.WriteString(sc.text())
		}
	}
	return append(row, field.String())
}

// scanner walks a string one rune at a time with one rune of lookahead.
// Invalid UTF-8 bytes are passed through untouched.
type scanner struct {
	s     string
	start int
	end   int
	cur   rune
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

// next advances to the following rune and reports whether one exists.
func (sc *scanner) next() bool {
	if sc.end >= len(sc.s) {
		return false
	}
	r, size := utf8.DecodeRuneInString(sc.s[sc.end:])
	sc.start, sc.end, sc.cur = sc.end, sc.end+size, r
	return true
}

// rune returns the current rune.
func (sc *scanner) rune() rune { return sc.cur }

// text returns the bytes of the current rune exactly as they appear in s.
func (sc *scanner) text() string { return sc.s[sc.start:sc.end] }

// peek returns the rune after the current one, or -1 at end of input.
func (sc *scanner) peek() rune {
	if sc.end >= len(sc.s) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(sc.s[sc.end:])
	return r
}
