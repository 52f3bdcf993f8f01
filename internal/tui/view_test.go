package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/rusenback/smslogs/internal/api"
	"github.com/rusenback/smslogs/internal/model"
)

func TestView_Loading(t *testing.T) {
	m := newTestModel(&fakeClient{}, &fakeClipboard{})
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "Loading SMS logs...") {
		t.Error("loading view should show the loading message")
	}
	if strings.Contains(view, "Sender") {
		t.Error("loading view should not render the table")
	}
}

func TestView_List(t *testing.T) {
	m, _ := loadedModel(t, sampleRecords())
	view := ansi.Strip(m.View())

	for _, want := range []string{"SMS Logs", "Sender", "Content", "Bank", "Shop", "2024-01-05", "2 of 2 shown", "Type: All"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q", want)
		}
	}
	if strings.Contains(view, "2024-01-05T10") {
		t.Error("received date should drop the time part")
	}
	if strings.Contains(view, "Loading SMS logs") {
		t.Error("list view should not show the loading message")
	}
}

func TestView_MissingDateShowsDash(t *testing.T) {
	m, _ := loadedModel(t, []model.LogRecord{{UID: "x", Sender: strPtr("Solo"), Content: strPtr("hello")}})
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	for _, line := range lines {
		if strings.Contains(line, "Solo") {
			if !strings.Contains(line, " - ") {
				t.Errorf("row without received_at should show '-': %q", line)
			}
			return
		}
	}
	t.Fatal("row not rendered")
}

func TestView_ErrorPanel(t *testing.T) {
	m := newTestModel(&fakeClient{}, &fakeClipboard{})
	next, _ := m.Update(logsMsg{err: &api.APIError{StatusCode: 400, Body: `{"code":"E1"}`}})
	m = next.(Model)
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "Error loading SMS logs") {
		t.Error("error view should show the error title")
	}
	if !strings.Contains(view, `"code": "E1"`) {
		t.Error("error view should show the pretty-printed payload")
	}
	if strings.Contains(view, "Sender") {
		t.Error("error view should not render the table")
	}
}

func TestView_RenderingAtDifferentSizes(t *testing.T) {
	sizes := []struct {
		name          string
		width, height int
	}{
		{"40x12", 40, 12},
		{"80x24", 80, 24},
		{"200x50", 200, 50},
	}

	for _, size := range sizes {
		t.Run(size.name, func(t *testing.T) {
			m, _ := loadedModel(t, sampleRecords())
			next, _ := m.Update(tea.WindowSizeMsg{Width: size.width, Height: size.height})
			view := ansi.Strip(next.(Model).View())

			if !strings.Contains(view, "Bank") {
				t.Errorf("view at %s missing first row", size.name)
			}
		})
	}
}

func TestView_Quitting(t *testing.T) {
	m, _ := loadedModel(t, sampleRecords())
	m = press(m, keyRunes("q"))
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestProgram_LoadsAndQuits(t *testing.T) {
	m := newTestModel(&fakeClient{records: sampleRecords()}, &fakeClipboard{})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Bank"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(keyRunes("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final := tm.FinalModel(t).(Model)
	if len(final.logs) != 2 {
		t.Fatalf("expected 2 loaded rows, got %d", len(final.logs))
	}
}

func TestProgram_ShowsFetchError(t *testing.T) {
	m := newTestModel(&fakeClient{err: errors.New("Network down")}, &fakeClipboard{})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Network down"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
