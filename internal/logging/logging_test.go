package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{" ERROR ", logrus.ErrorLevel},
		{"unknown", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smslogs.log")

	logger, closer, err := New(path, logrus.InfoLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.WithField("count", 3).Info("SMS logs loaded")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "SMS logs loaded") || !strings.Contains(out, "count=3") {
		t.Errorf("expected info line with field, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug line to be filtered, got %q", out)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("", logrus.DebugLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
