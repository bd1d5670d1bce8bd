package csvtext

import (
	"fmt"
	"strings"
)

// Delimiter is the single character separating fields on a line.
type Delimiter rune

const (
	// Auto asks for the delimiter to be detected from the text.
	Auto Delimiter = 0
	// Comma is the default delimiter and wins ties.
	Comma Delimiter = ','
	// Semicolon is common in CSV exported by European Excel locales.
	Semicolon Delimiter = ';'
)

// quote is the only quoting character recognised by the parser.
const quote = '"'

// String returns the delimiter as a one-character string, or "auto".
func (d Delimiter) String() string {
	if d == Auto {
		return "auto"
	}
	return string(rune(d))
}

// Name returns a human-readable name for the delimiter.
func (d Delimiter) Name() string {
	switch d {
	case Comma:
		return "comma"
	case Semicolon:
		return "semicolon"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("%q", rune(d))
	}
}

// MarshalText encodes the delimiter as its character.
func (d Delimiter) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDelimiter maps user input to a Delimiter.
// Accepted values are "", "auto", ",", "comma", ";" and "semicolon".
func ParseDelimiter(s string) (Delimiter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case ",", "comma":
		return Comma, nil
	case ";", "semicolon":
		return Semicolon, nil
	default:
		return Auto, fmt.Errorf("unsupported delimiter %q: use comma or semicolon", s)
	}
}

// Resolve returns d, or the delimiter detected in text when d is Auto.
func (d Delimiter) Resolve(text string) Delimiter {
	if d == Auto {
		return DetectDelimiter(text)
	}
	return d
}

// Row is one parsed line.
type Row []string

// Join re-joins the fields with d without adding any quoting.
func (r Row) Join(d Delimiter) string {
	return strings.Join(r, d.String())
}

// Table is a parse result. The first row is the header by convention.
type Table []Row

// Header returns the first row, or nil for an empty table.
func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Body returns every row after the header.
func (t Table) Body() []Row {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Width returns the length of the longest row.
func (t Table) Width() int {
	width := 0
	for _, row := range t {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
