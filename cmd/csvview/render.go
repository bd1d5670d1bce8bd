package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/JonMunkholm/csvview/internal/csvtext"
)

const (
	columnGap = "  "
	ellipsis  = "…"
)

type renderOpts struct {
	// Color styles the header row.
	Color bool
	// MaxWidth truncates cells to this display width; 0 disables.
	MaxWidth int
}

// renderTable writes t with columns aligned by display width, so wide
// (CJK, emoji) characters line up. Row 0 is the header and is followed by a
// rule. Short rows are padded with empty cells.
func renderTable(w io.Writer, t csvtext.Table, opts renderOpts) error {
	if len(t) == 0 {
		return nil
	}

	header := color.New(color.Bold, color.FgCyan)
	if opts.Color {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	cells := make([][]string, len(t))
	widths := make([]int, t.Width())
	for i, row := range t {
		cells[i] = make([]string, len(widths))
		for j := range widths {
			var cell string
			if j < len(row) {
				cell = displayCell(row[j], opts.MaxWidth)
			}
			cells[i][j] = cell
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	bw := bufio.NewWriter(w)
	for i, row := range cells {
		line := formatRow(row, widths)
		if i == 0 {
			line = header.Sprint(line)
		}
		bw.WriteString(line)
		bw.WriteByte('\n')

		if i == 0 {
			bw.WriteString(rule(widths))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func formatRow(row []string, widths []int) string {
	var b strings.Builder
	for j, cell := range row {
		if j > 0 {
			b.WriteString(columnGap)
		}
		if j == len(row)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(runewidth.FillRight(cell, widths[j]))
	}
	return strings.TrimRight(b.String(), " ")
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for j, w := range widths {
		parts[j] = strings.Repeat("-", max(w, 1))
	}
	return strings.Join(parts, columnGap)
}

// displayCell makes a cell safe to print on one line and truncates it.
func displayCell(s string, maxWidth int) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\t':
			return ' '
		case '\r', '\n':
			return '↵'
		}
		return r
	}, s)
	if maxWidth > 0 && runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, ellipsis)
	}
	return s
}
