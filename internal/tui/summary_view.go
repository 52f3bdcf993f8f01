package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rusenback/smslogs/internal/model"
)

var typeColors = map[string]string{
	model.TypeBalance:    "#89B4FA", // blue
	model.TypeDeposit:    "#A6E3A1", // green
	model.TypeWithdrawal: "#FAB387", // orange
}

// typeStyle colours an SMS type tag; unknown types stay dim
func typeStyle(smsType string) lipgloss.Style {
	if c, ok := typeColors[smsType]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return dimStyle
}

// renderSummary renders "N of M shown" followed by per-type counts of the filtered view
func (m Model) renderSummary() string {
	s := model.Summarize(m.filtered)

	parts := []string{m.tr.Tf("smsLogs.summary", s.Total, len(m.logs))}
	counts := []struct {
		smsType string
		n       int
	}{
		{model.TypeBalance, s.Balance},
		{model.TypeDeposit, s.Deposit},
		{model.TypeWithdrawal, s.Withdrawal},
	}
	for _, c := range counts {
		parts = append(parts, typeStyle(c.smsType).Render(fmt.Sprintf("%s %d", m.tr.Label(c.smsType), c.n)))
	}
	if s.Other > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%s %d", m.tr.T("smsLogs.other"), s.Other)))
	}
	return strings.Join(parts, "  ")
}
