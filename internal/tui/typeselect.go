package tui

import "fmt"

// TypeSelect is a cycling selector over the SMS type filter options
type TypeSelect struct {
	Label    string
	Options  []string
	Selected int

	labelFor func(string) string
}

// NewTypeSelect creates a selector with the first option selected
func NewTypeSelect(label string, options []string, labelFor func(string) string) *TypeSelect {
	return &TypeSelect{
		Label:    label,
		Options:  options,
		labelFor: labelFor,
	}
}

// Value returns the selected option, or "" when there are none
func (s *TypeSelect) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// Next selects the following option, wrapping around
func (s *TypeSelect) Next() {
	if len(s.Options) == 0 {
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Options)
}

// Prev selects the previous option, wrapping around
func (s *TypeSelect) Prev() {
	if len(s.Options) == 0 {
		return
	}
	s.Selected = (s.Selected + len(s.Options) - 1) % len(s.Options)
}

// Render renders the collapsed selector
func (s *TypeSelect) Render() string {
	value := s.Value()
	text := "(none)"
	if value != "" {
		text = value
		if s.labelFor != nil {
			text = s.labelFor(value)
		}
	}
	return dropdownStyle.Render(fmt.Sprintf("%s: %s ▼", s.Label, text))
}
