package tui

import tea "github.com/charmbracelet/bubbletea"

type confirmModel struct {
	message string
	yes     string
	no      string
	onYes   func(m *model) tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += helpStyle.Render("y " + m.yes + "    n " + m.no)
	return overlayBoxStyle.Render(content)
}
