// internal/model/sms.go
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Known SMS types offered by the type filter
const (
	TypeAll        = "all"
	TypeBalance    = "balance"
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// KnownTypes lists the filter options in display order, wildcard first
var KnownTypes = []string{TypeAll, TypeBalance, TypeDeposit, TypeWithdrawal}

// LogRecord represents a single SMS message entry returned by the backend.
// Every field is optional on the wire.
type LogRecord struct {
	UID        ID      `json:"uid,omitempty"`
	ID         ID      `json:"id,omitempty"`
	Sender     *string `json:"sender,omitempty"`
	Content    *string `json:"content,omitempty"`
	ReceivedAt *string `json:"received_at,omitempty"`
	SMSType    string  `json:"sms_type,omitempty"`
}

// ID is an identifier the API may send either as a string or as a number
type ID string

// UnmarshalJSON accepts strings, numbers and null
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// SenderText returns the sender or an empty string
func (r LogRecord) SenderText() string {
	if r.Sender == nil {
		return ""
	}
	return *r.Sender
}

// ContentText returns the message body or an empty string
func (r LogRecord) ContentText() string {
	if r.Content == nil {
		return ""
	}
	return *r.Content
}

// Key identifies the row for selection and copy tracking.
// Falls back from uid to id to the raw content, so two rows with the same
// content and no identifiers share a key.
func (r LogRecord) Key() string {
	switch {
	case r.UID != "":
		return string(r.UID)
	case r.ID != "":
		return string(r.ID)
	default:
		return r.ContentText()
	}
}

// ReceivedDate returns the date part of received_at, or "-" when absent
func (r LogRecord) ReceivedDate() string {
	if r.ReceivedAt == nil || *r.ReceivedAt == "" {
		return "-"
	}
	date, _, _ := strings.Cut(*r.ReceivedAt, "T")
	return date
}
