package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI interface. States are exclusive: loading, error, list.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return m.renderLoading()
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("📨 "+m.tr.T("smsLogs.list")) + "\n\n")

	if m.err != "" {
		s.WriteString(m.renderErrorPanel() + "\n")
		s.WriteString(m.renderToast())
		s.WriteString(helpStyle.Render(m.tr.T("smsLogs.quitHelp")))
		return s.String()
	}

	s.WriteString(m.renderSummary() + "\n\n")
	s.WriteString(m.renderControls() + "\n")
	s.WriteString(m.renderTable())
	s.WriteString(m.renderToast())
	s.WriteString(helpStyle.Render(m.tr.T("smsLogs.help")))

	return s.String()
}

// renderLoading renders only the centered loading message
func (m Model) renderLoading() string {
	msg := m.spinner.View() + " " + loadingStyle.Render(m.tr.T("smsLogs.loading"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
