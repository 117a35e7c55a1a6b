package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gosom/naver-place-reviews/naver"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	DefaultPreviewRows = 5
	maxCellWidth       = 24
)

// TerminalWidth returns the width of the terminal attached to f, or 0 when
// f is not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

// Preview prints the first n reviews as an aligned table. Widths are
// measured in terminal cells so Hangul and emoji line up. Lines are cut at
// lineWidth when it is positive.
func Preview(w io.Writer, reviews []naver.Review, n, lineWidth int) error {
	if n <= 0 || len(reviews) == 0 {
		return nil
	}

	n = min(n, len(reviews))

	var header naver.Review

	table := make([][]string, 0, n+1)
	table = append(table, append([]string{""}, header.CsvHeaders()...))

	for i := range n {
		table = append(table, append([]string{strconv.Itoa(i)}, reviews[i].CsvRow()...))
	}

	widths := make([]int, len(table[0]))

	for _, row := range table {
		for j, cell := range row {
			widths[j] = max(widths[j], min(runewidth.StringWidth(cell), maxCellWidth))
		}
	}

	for _, row := range table {
		cells := make([]string, len(row))
		for j, cell := range row {
			cell = runewidth.Truncate(cell, maxCellWidth, "…")
			cells[j] = runewidth.FillRight(cell, widths[j])
		}

		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if lineWidth > 0 {
			line = runewidth.Truncate(line, lineWidth, "")
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
