package csvtext

import "strings"

// sampleLines is how many leading lines DetectDelimiter inspects.
const sampleLines = 5

// DetectDelimiter picks the likely delimiter of text.
//
// It counts commas and semicolons over at most the first five lines and
// returns Semicolon only when semicolons strictly outnumber commas.
func DetectDelimiter(text string) Delimiter {
	lines := SplitLines(text)
	if len(lines) > sampleLines {
		lines = lines[:sampleLines]
	}

	var commas, semicolons int
	for _, line := range lines {
		commas += strings.Count(line, string(Comma))
		semicolons += strings.Count(line, string(Semicolon))
	}

	if semicolons > commas {
		return Semicolon
	}
	return Comma
}
