package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Write prints rows to w with each column padded to the display width of its
// widest cell. Rows shorter than the widest row are padded with empty cells.
// Trailing whitespace is trimmed from every line.
func Write(w io.Writer, rows [][]string) error {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	// maxWidths of each column
	maxWidths := make([]int, cols)
	for _, row := range rows {
		for col, cell := range row {
			if currLen := runewidth.StringWidth(cell); currLen > maxWidths[col] {
				maxWidths[col] = currLen
			}
		}
	}

	padded := make([]string, cols)
	for _, row := range rows {
		for col := 0; col < cols; col++ {
			var cell string
			if col < len(row) {
				cell = row[col]
			}
			padded[col] = runewidth.FillRight(cell, maxWidths[col])
		}

		line := strings.TrimRight(strings.Join(padded, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
