package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rusenback/smslogs/internal/model"
)

const copyIcon = "⧉"

// columnLayout holds the display width of each table column
type columnLayout struct {
	sender  int
	content int
	date    int
	smsType int
	copy    int
}

// columnWidths splits the terminal width between the columns
func (m Model) columnWidths() columnLayout {
	c := columnLayout{date: 10, smsType: 12}
	c.copy = max(
		ansi.StringWidth(copyIcon+" "+m.tr.T("smsLogs.copied")),
		ansi.StringWidth(m.tr.T("smsLogs.copy")),
	)

	// 2 for the cursor marker, 4 column separators
	rest := m.width - 2 - 4 - c.date - c.smsType - c.copy
	c.sender = max(rest/4, 8)
	c.content = max(rest-c.sender, 12)
	return c
}

// renderControls renders the search box and the type selector side by side
func (m Model) renderControls() string {
	box := inputStyle
	if m.search.Focused() {
		box = inputFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(m.search.View()),
		"  ",
		m.typeSelect.Render(),
	)
}

// renderTable renders the header and the visible window of filtered rows
func (m Model) renderTable() string {
	var s strings.Builder
	cols := m.columnWidths()

	header := strings.Join([]string{
		cell(m.tr.T("smsLogs.sender"), cols.sender, nil),
		cell(m.tr.T("smsLogs.content"), cols.content, nil),
		cell(m.tr.T("smsLogs.receivedAt"), cols.date, nil),
		cell(m.tr.T("smsLogs.type"), cols.smsType, nil),
		cell(m.tr.T("smsLogs.copy"), cols.copy, nil),
	}, " ")
	s.WriteString(headerStyle.Render("  "+header) + "\n")

	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.filtered))
	for i := m.offset; i < end; i++ {
		rec := m.filtered[i]
		if i == m.cursor {
			s.WriteString(selectedStyle.Render("> " + m.renderRow(rec, cols, false)))
		} else {
			s.WriteString("  " + m.renderRow(rec, cols, true))
		}
		s.WriteString("\n")
	}

	if len(m.filtered) > visible {
		s.WriteString(dimStyle.Render(fmt.Sprintf("[%d/%d]", m.cursor+1, len(m.filtered))) + "\n")
	}

	return s.String()
}

// renderRow renders one record. Selected rows are left unstyled so the
// selection background stays continuous.
func (m Model) renderRow(rec model.LogRecord, cols columnLayout, styled bool) string {
	term := m.search.Value()

	var senderFn, contentFn, typeFn, copyFn func(string) string
	_, copied := m.copied[rec.Key()]
	copyText := copyIcon
	if copied {
		copyText = copyIcon + " " + m.tr.T("smsLogs.copied")
	}

	if styled {
		senderFn = func(t string) string { return styleSender(t, term) }
		contentFn = func(t string) string { return styleContent(t, term) }
		typeFn = func(t string) string { return typeStyle(rec.SMSType).Render(t) }
		copyFn = func(t string) string {
			if copied && t == copyText {
				return copyIcon + " " + copiedStyle.Render(m.tr.T("smsLogs.copied"))
			}
			return t
		}
	}

	return strings.Join([]string{
		cell(rec.SenderText(), cols.sender, senderFn),
		cell(rec.ContentText(), cols.content, contentFn),
		cell(rec.ReceivedDate(), cols.date, nil),
		cell(rec.SMSType, cols.smsType, typeFn),
		cell(copyText, cols.copy, copyFn),
	}, " ")
}

// renderErrorPanel renders the load failure. JSON payloads are shown preformatted.
func (m Model) renderErrorPanel() string {
	var s strings.Builder
	s.WriteString(errorTitleStyle.Render("✖ "+m.tr.T("smsLogs.errorLoading")) + "\n\n")

	if strings.HasPrefix(m.err, "{") {
		s.WriteString(preStyle.Render(m.err))
	} else {
		s.WriteString(errorTextStyle.Render(m.err))
	}

	return errorPanelStyle.Width(min(max(m.width-4, 20), 100)).Render(s.String())
}
