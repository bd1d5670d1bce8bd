// Package csvtext turns raw CSV-like text into rows of string cells.
//
// The package has two pieces, both pure functions over in-memory strings:
//
//   - [DetectDelimiter] looks at the first few lines and chooses between
//     comma and semicolon.
//   - [Parse] splits text into a [Table] for a given delimiter, honoring
//     double-quoted fields and doubled quotes inside them.
//
// Parsing never fails. Blank lines are skipped, ragged rows are kept as-is,
// and an unbalanced quote simply swallows the rest of its line into the
// current field:
//
//	t, d := csvtext.ParseAuto("name;age\nAlice;30\n")
//	// d == csvtext.Semicolon
//	// t == Table{{"name", "age"}, {"Alice", "30"}}
package csvtext
