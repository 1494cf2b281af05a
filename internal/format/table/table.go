package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes how one column is laid out. A MaxWidth of zero leaves the
// column unbounded.
type Column struct {
	Align    Alignment
	MaxWidth int
}

// Format returns the rows padded according to the widest entry in each
// column. Cells wider than their column's MaxWidth are cut with an ellipsis
// before widths are measured.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for i, row := range rows {
		cells[i] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = clip(row[c], maxWidth(columns, c))
			}
			cells[i][c] = cell
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			last := c == len(row)-1
			if alignment(columns, c) == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func clip(cell string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(cell) <= limit {
		return cell
	}
	if limit == 1 {
		return "…"
	}
	return truncate.StringWithTail(cell, uint(limit), "…")
}

func maxWidth(columns []Column, c int) int {
	if c < len(columns) {
		return columns[c].MaxWidth
	}
	return 0
}

func alignment(columns []Column, c int) Alignment {
	if c < len(columns) {
		return columns[c].Align
	}
	return AlignLeft
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
