package model

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestLogRecord_Key(t *testing.T) {
	tests := []struct {
		name string
		rec  LogRecord
		want string
	}{
		{"uid wins", LogRecord{UID: "u1", ID: "7", Content: strPtr("hello")}, "u1"},
		{"id when no uid", LogRecord{ID: "7", Content: strPtr("hello")}, "7"},
		{"content fallback", LogRecord{Content: strPtr("hello")}, "hello"},
		{"nothing", LogRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Key(); got != tt.want {
				t.Errorf("Expected key %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLogRecord_ReceivedDate(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"absent", nil, "-"},
		{"empty", strPtr(""), "-"},
		{"iso timestamp", strPtr("2024-01-05T10:00:00Z"), "2024-01-05"},
		{"date only", strPtr("2024-01-05"), "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LogRecord{ReceivedAt: tt.in}
			if got := r.ReceivedDate(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLogRecord_UnmarshalIDs(t *testing.T) {
	var recs []LogRecord
	body := `[{"id": 42, "content": "a"}, {"uid": "abc-1"}, {"id": null, "uid": null}]`
	if err := json.Unmarshal([]byte(body), &recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs[0].ID != "42" {
		t.Errorf("Expected numeric id to become \"42\", got %q", recs[0].ID)
	}
	if recs[1].UID != "abc-1" {
		t.Errorf("Expected uid abc-1, got %q", recs[1].UID)
	}
	if recs[2].Key() != "" {
		t.Errorf("Expected empty key for null ids, got %q", recs[2].Key())
	}
	if recs[2].Sender != nil {
		t.Error("Expected missing sender to stay nil")
	}
}

func TestLogRecord_UnmarshalRejectsObjectID(t *testing.T) {
	var r LogRecord
	if err := json.Unmarshal([]byte(`{"id": {"x": 1}}`), &r); err == nil {
		t.Fatal("expected error for object id")
	}
}
