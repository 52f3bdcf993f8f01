package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/rusenback/smslogs/internal/storage"
)

func TestPrintHistory(t *testing.T) {
	color.NoColor = true
	ts := time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)
	events := []storage.Event{
		{Kind: storage.EventLoaded, Timestamp: ts, Count: 3},
		{Kind: storage.EventLoadFailed, Timestamp: ts, Detail: "{\n  \"code\": \"E1\"\n}"},
		{Kind: storage.EventCopied, Timestamp: ts, Detail: "a"},
	}

	var buf bytes.Buffer
	printHistory(&buf, storage.Range1Hour, events)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "2024-01-05 10:00:00") || !strings.Contains(lines[0], "3 records") {
		t.Errorf("unexpected loaded line %q", lines[0])
	}
	if !strings.Contains(lines[1], `{ "code": "E1" }`) {
		t.Errorf("failure detail should be folded to one line: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], " a") {
		t.Errorf("unexpected copied line %q", lines[2])
	}
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, storage.Range1Day, nil)
	if got := buf.String(); got != "No activity in the last 1day\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("SMSLOGS_HOME", t.TempDir())
	t.Setenv("SMSLOGS_API_BASE_URL", "https://env.example.com")

	f := &flags{configPath: "", baseURL: "https://flag.example.com/", lang: "fi"}
	cfg, err := f.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "https://flag.example.com" {
		t.Errorf("expected flag base URL without trailing slash, got %q", cfg.API.BaseURL)
	}
	if cfg.UI.Language != "fi" {
		t.Errorf("expected fi, got %q", cfg.UI.Language)
	}
}

func TestRootCommandHasHistory(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"history"})
	if err != nil || cmd.Name() != "history" {
		t.Fatalf("history subcommand not registered: %v", err)
	}
	if root.PersistentFlags().Lookup("base-url") == nil {
		t.Fatal("missing --base-url flag")
	}
}
