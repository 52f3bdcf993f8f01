package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/smslogs/internal/api"
	"github.com/rusenback/smslogs/internal/model"
	"github.com/rusenback/smslogs/internal/storage"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, m.width/2-8)
		m.clampScroll()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logsMsg:
		// The view is gone; a late result must not touch state
		if m.ctx.Err() != nil {
			return m, nil
		}
		return m.handleLogs(msg)

	case copyExpiredMsg:
		if gen, ok := m.copied[msg.key]; ok && gen == msg.gen {
			delete(m.copied, msg.key)
		}

	case toastExpiredMsg:
		if m.toast != nil && msg.gen == m.toastGen {
			m.toast = nil
		}

	case clipboardMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard write failed")
		}
	}

	return m, nil
}

// handleLogs stores the fetch outcome and raises the matching toast
func (m Model) handleLogs(msg logsMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		text := api.DescribeError(msg.err)
		if text == "" {
			text = m.tr.T("smsLogs.failedToLoad")
		}
		m.err = text
		m.logs = nil
		m.applyFilter()

		m.log.WithError(msg.err).Error("SMS logs fetch error")
		m.record(&storage.Event{Kind: storage.EventLoadFailed, Detail: text})
		return m, m.showToast(m.tr.T("smsLogs.failedToLoad"), text, true)
	}

	m.err = ""
	m.logs = msg.records
	if m.logs == nil {
		m.logs = []model.LogRecord{}
	}
	m.applyFilter()

	m.log.WithField("count", len(m.logs)).Info("SMS logs loaded")
	m.record(&storage.Event{Kind: storage.EventLoaded, Count: len(m.logs)})
	return m, m.showToast(m.tr.T("smsLogs.success"), m.tr.T("smsLogs.loadedSuccessfully"), false)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Loading and error screens have no controls
	if m.loading || m.err != "" {
		if msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()

	case "/":
		return m, m.search.Focus()

	case "t":
		m.typeSelect.Next()
		m.applyFilter()

	case "T":
		m.typeSelect.Prev()
		m.applyFilter()

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "pgup":
		m.moveCursor(-m.visibleRows())

	case "pgdown":
		m.moveCursor(m.visibleRows())

	case "home", "g":
		m.moveCursor(-len(m.filtered))

	case "end", "G":
		m.moveCursor(len(m.filtered))

	case "enter", "c", "y":
		return m.copySelected()
	}

	return m, nil
}

// handleSearchKey edits the search box; the filter follows every keystroke
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.applyFilter()
		return m, nil
	case "enter":
		m.search.Blur()
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

// copySelected copies the content of the row under the cursor
func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return m, nil
	}
	rec := m.filtered[m.cursor]
	key := rec.Key()

	// Each copy gets its own generation so rows expire independently
	m.copyGen++
	m.copied[key] = m.copyGen

	detail := "(no id)"
	if rec.UID != "" || rec.ID != "" {
		detail = key
	}
	m.record(&storage.Event{Kind: storage.EventCopied, Detail: detail})

	return m, tea.Batch(
		writeClipboard(m.clipboard, rec.ContentText()),
		expireCopied(key, m.copyGen, m.copiedFor),
	)
}

// moveCursor moves the row cursor by delta and keeps it visible
func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.filtered)-1)
	m.clampScroll()
}
