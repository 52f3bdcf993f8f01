package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// toast is a transient notification shown above the help line
type toast struct {
	title       string
	description string
	destructive bool
}

// showToast replaces the current toast and schedules its dismissal
func (m *Model) showToast(title, description string, destructive bool) tea.Cmd {
	m.toastGen++
	m.toast = &toast{title: title, description: description, destructive: destructive}
	return expireToast(m.toastGen, m.toastFor)
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	style := toastStyle
	if m.toast.destructive {
		style = toastDestructiveStyle
	}
	text := m.toast.title + ": " + singleLine(m.toast.description)
	return "\n" + style.Render(truncate(text, max(m.width-4, 10))) + "\n"
}
