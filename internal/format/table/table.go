package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// columnGap separates adjacent columns.
const columnGap = "  "

// Format pads the rows so every column is as wide as its widest entry.
// Rows never carry trailing spaces, so they can double as menu labels
// without inflating the label column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - cellWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Join renders the formatted rows as one block.
func Join(rows [][]string, alignments []Alignment) string {
	return strings.Join(Format(rows, alignments), "\n")
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
