package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// reservedLines is everything around the table rows: title, summary,
// controls box, header, toast and help
const reservedLines = 14

// truncate shortens a string to a maximum display width
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return ansi.Truncate(s, max, "…")
}

// singleLine folds line breaks and runs of whitespace so a cell stays on one row
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cell truncates plain text to width, styles it, then pads it to width
func cell(plain string, width int, style func(string) string) string {
	t := truncate(singleLine(plain), width)
	styled := t
	if style != nil {
		styled = style(t)
	}
	if pad := width - ansi.StringWidth(t); pad > 0 {
		styled += strings.Repeat(" ", pad)
	}
	return styled
}

// visibleRows calculates how many table rows fit on screen
func (m Model) visibleRows() int {
	return max(m.height-reservedLines, 3)
}

// clampScroll keeps the cursor inside the visible window
func (m *Model) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	maxOffset := max(len(m.filtered)-visible, 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}
