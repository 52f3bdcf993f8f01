package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/smslogs/internal/api"
)

// fetchLogs creates a command that loads the SMS log list once
func fetchLogs(ctx context.Context, client api.SMSLogClient) tea.Cmd {
	return func() tea.Msg {
		records, err := client.ListSMSLogs(ctx)
		return logsMsg{records: records, err: err}
	}
}

// expireCopied creates a command that clears a row's copied indicator after d
func expireCopied(key string, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyExpiredMsg{key: key, gen: gen}
	})
}

// expireToast creates a command that dismisses the toast after d
func expireToast(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

// writeClipboard creates a command that copies text; failures only get logged
func writeClipboard(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: cb.WriteText(text)}
	}
}
