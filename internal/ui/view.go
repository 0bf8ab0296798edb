package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/he3als/windows-no-usb/internal/menu"
)

const (
	highlightBar     = "▌"
	subMenuIndicator = "›"
	checkedMark      = "✓"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. The whole frame is rebuilt from the active
// context on every pass; the runtime diffs it against the previous frame
// and repaints only the rows that changed, so a cursor move touches two
// rows and a page flip redraws the page area.
func (m *Model) View() string {
	width := m.frameWidth()
	lines := make([]styledLine, 0, m.layout.PageSize+4)
	lines = append(lines, m.headerLine(width))
	lines = append(lines, styledLine{})
	if len(m.active.Entries) == 0 {
		lines = append(lines, styledLine{text: "(no entries)", style: styles.Info})
	} else {
		for i, entry := range m.active.PageEntries(m.layout) {
			lines = append(lines, m.buildRowLine(entry, i == m.active.Row))
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHint(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// frameWidth is the width of the menu column, capped by the terminal.
// Entry rows are built at exactly this width; only the footer hint may
// run wider.
func (m *Model) frameWidth() int {
	width := m.layout.RowWidth
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

// headerLine renders the title, with the page indicator right-aligned
// when the entry set spans more than one page.
func (m *Model) headerLine(width int) styledLine {
	title := m.active.Title
	if m.layout.PageCount == 0 {
		return styledLine{text: title, style: styles.Header}
	}
	info := fmt.Sprintf("%d/%d", m.active.Page+1, m.layout.PageCount+1)
	pad := width - lipgloss.Width(title) - lipgloss.Width(info)
	if pad < 1 {
		pad = 1
	}
	return styledLine{
		text:          title + strings.Repeat(" ", pad) + info,
		prefixStyle:   styles.Header,
		style:         styles.PageInfo,
		highlightFrom: len([]rune(title)) + pad,
	}
}

// buildRowLine constructs one entry row. Every row comes out at the same
// width so the highlight inversion spans the full column: the bar cell,
// the checkbox cell in multi-select sessions, and the label padded to
// the column width with the sub-menu glyph pinned to its right edge.
// Only the highlighted row carries the bar glyph, so the highlight stays
// visible even when the terminal drops the inversion.
func (m *Model) buildRowLine(entry menu.Entry, highlighted bool) styledLine {
	lineStyle := styles.Item
	barStyle := styles.ItemIndicator
	prefix := "  "
	if highlighted {
		lineStyle = styles.SelectedItem
		barStyle = styles.SelectedItemIndicator
		prefix = highlightBar + " "
	}
	cell := ""
	if m.multiSelect {
		mark := " "
		if entry.Selected {
			mark = checkedMark
		}
		cell = fmt.Sprintf("[%s] ", mark)
	}
	suffix := ""
	if entry.HasSubMenu() {
		suffix = subMenuIndicator
	}
	labelWidth := m.layout.ColumnWidth - lipgloss.Width(cell) - lipgloss.Width(suffix)
	return styledLine{
		text:          prefix + cell + fitCell(entry.Label, labelWidth) + suffix + " ",
		style:         lineStyle,
		prefixStyle:   barStyle,
		highlightFrom: 1, // just the bar cell
	}
}

func (m *Model) footerHint() string {
	if m.multiSelect {
		return "↑/↓ move  space mark  ins/del all/none  enter confirm  esc back"
	}
	return "↑/↓ move  ←/→ page  enter select  esc back  ctrl+c quit"
}

// fitCell pads or truncates text to exactly width display cells, using
// ANSI-aware visual measurement so wide runes count correctly.
func fitCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := lipgloss.Width(text); w > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if w := lipgloss.Width(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
