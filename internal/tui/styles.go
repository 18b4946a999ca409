package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Underline(true)

	counterStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 3)

	cellStyle         = lipgloss.NewStyle().Width(6)
	selectedCellStyle = cellStyle.Reverse(true)
	todayCellStyle    = cellStyle.Bold(true).Underline(true)
	weekdayStyle      = cellStyle.Faint(true)

	cursorStyle = lipgloss.NewStyle().Bold(true)
)
