package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/models"
)

type gamesState struct {
	cursor int
}

func (m model) updateGames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.services.GameCatalog.Games())

	switch {
	case key.Matches(msg, keys.up):
		if m.games.cursor > 0 {
			m.games.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.games.cursor < count-1 {
			m.games.cursor++
		}
	}
	return m, nil
}

func (m model) viewGames() string {
	l := m.labels
	lang := m.services.Preferences.Language()

	var b strings.Builder
	b.WriteString(helpStyle.Render(l.GamesSubtitle) + "\n\n")

	for i, g := range m.services.GameCatalog.Games() {
		b.WriteString(cursorMark(i == m.games.cursor))
		b.WriteString(g.Emoji + " " + gameText(g.Title, lang) + "\n")
		if i == m.games.cursor {
			b.WriteString("     " + helpStyle.Render(gameText(g.Description, lang)) + "\n")
		}
	}

	return renderPage(l.GamesTitle, b.String(), "↑/↓")
}

func gameText(texts map[models.Language]string, lang models.Language) string {
	if v, ok := texts[lang]; ok {
		return v
	}
	return texts[models.English]
}
