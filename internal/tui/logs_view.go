package tui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Money-like figures: 100, 1,250.00, 99.5
	amountPattern = regexp.MustCompile(`\b\d{1,3}(?:[ ,]\d{3})*(?:[.,]\d+)?\b`)

	matchStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#F9E2AF"))
	amountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	senderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB"))
)

// styleContent highlights the search term when there is one, otherwise amounts
func styleContent(text, term string) string {
	if term != "" {
		return highlightTerm(text, term, lipgloss.NewStyle())
	}
	return amountPattern.ReplaceAllStringFunc(text, func(match string) string {
		return amountStyle.Render(match)
	})
}

// styleSender highlights the search term inside the sender
func styleSender(text, term string) string {
	if term == "" {
		return senderStyle.Render(text)
	}
	return highlightTerm(text, term, senderStyle)
}

// highlightTerm renders case-insensitive matches of term with matchStyle and
// everything else with base
func highlightTerm(text, term string, base lipgloss.Style) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return base.Render(text)
	}

	var out string
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out += base.Render(text[last:loc[0]])
		}
		out += matchStyle.Render(text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		out += base.Render(text[last:])
	}
	return out
}
