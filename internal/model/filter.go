package model

import "strings"

// Filter holds the user's search term and type selection
type Filter struct {
	Search string
	Type   string
}

// Matches reports whether a record passes both the search and the type predicate
func (f Filter) Matches(r LogRecord) bool {
	return f.matchesSearch(r) && f.matchesType(r)
}

func (f Filter) matchesSearch(r LogRecord) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	if r.Sender != nil && strings.Contains(strings.ToLower(*r.Sender), term) {
		return true
	}
	return r.Content != nil && strings.Contains(strings.ToLower(*r.Content), term)
}

func (f Filter) matchesType(r LogRecord) bool {
	return f.Type == "" || f.Type == TypeAll || r.SMSType == f.Type
}

// Apply returns the records that match, preserving order. The input is never modified.
func (f Filter) Apply(records []LogRecord) []LogRecord {
	out := make([]LogRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
