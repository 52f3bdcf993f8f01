package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#CBA6F7"))

	selectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#89B4FA"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))

	loadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))

	copiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 1)

	inputFocusedStyle = inputStyle.BorderForeground(lipgloss.Color("#89B4FA"))

	dropdownStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 1)

	errorPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F38BA8")).
		Padding(1, 2)

	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))

	errorTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EBA0AC"))

	preStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#45475A")).
		Foreground(lipgloss.Color("#F5E0DC")).
		Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#A6E3A1")).
		Padding(0, 1)

	toastDestructiveStyle = toastStyle.Background(lipgloss.Color("#F38BA8"))
)
