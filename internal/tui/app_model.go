package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/internal/app"
	"github.com/MKhiriev/days-together/internal/service"
	"github.com/MKhiriev/days-together/models"
)

type tab int

const (
	tabHome tab = iota
	tabGames
	tabCalendar
	tabChat
	tabAbout
	tabCount
)

type model struct {
	ctx      context.Context
	services *service.ClientServices
	opts     Options
	ticks    chan models.Elapsed

	labels app.Labels
	active tab
	status string
	width  int

	elapsed  models.Elapsed
	home     homeState
	games    gamesState
	calendar calendarState
	chat     chatState

	confirm *confirmModel
	overlay *errorOverlayModel
}

func newModel(ctx context.Context, services *service.ClientServices, opts Options) model {
	return model{
		ctx:      ctx,
		services: services,
		opts:     opts,
		ticks:    make(chan models.Elapsed, 1),
		labels:   app.For(services.Preferences.Language()),
		active:   tabHome,
		elapsed:  services.ElapsedTracker.Current(),
		calendar: newCalendarState(time.Now().In(opts.Zone)),
	}
}

func (m model) Init() tea.Cmd {
	m.startTracker()
	return waitForElapsed(m.ticks)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case elapsedMsg:
		m.elapsed = models.Elapsed(msg)
		return m, waitForElapsed(m.ticks)
	case exportDoneMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = m.labels.Exported + " " + msg.path
		return m, clearStatusAfter()
	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = m.labels.CodeCopied
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m.quit()
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			onYes := m.confirm.onYes
			m.confirm = nil
			cmd := onYes(&m)
			return m, cmd
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, keys.quit):
			return m.quit()
		case key.Matches(msg, keys.tab):
			m.switchTab((m.active + 1) % tabCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.switchTab((m.active + tabCount - 1) % tabCount)
			return m, nil
		}
		for i, binding := range keys.tabs {
			if key.Matches(msg, binding) {
				m.switchTab(tab(i))
				return m, nil
			}
		}
	}

	switch m.active {
	case tabHome:
		return m.updateHome(msg)
	case tabGames:
		return m.updateGames(msg)
	case tabCalendar:
		return m.updateCalendar(msg)
	case tabChat:
		return m.updateChat(msg)
	case tabAbout:
		return m.updateAbout(msg)
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.services.ElapsedTracker.Stop()
	return m, tea.Quit
}

// typing reports whether keystrokes belong to a text input.
func (m model) typing() bool {
	return m.home.mode != homeView ||
		m.calendar.editor != nil ||
		m.chat.mode != chatBrowse
}

// switchTab runs the elapsed tracker only while the home screen is shown.
func (m *model) switchTab(next tab) {
	if next == m.active {
		return
	}
	if m.active == tabHome {
		m.services.ElapsedTracker.Stop()
	}
	if next == tabHome {
		m.startTracker()
	}
	m.active = next
}

func (m *model) startTracker() {
	ticks := m.ticks
	m.services.ElapsedTracker.Start(m.ctx, m.opts.ElapsedInterval, func(e models.Elapsed) {
		publishElapsed(ticks, e)
	})
}

func (m *model) showError(err error) {
	m.overlay = &errorOverlayModel{
		title:   m.labels.Error,
		message: humanizeError(err, m.labels),
		hint:    m.labels.Close,
	}
}

func (m *model) ask(message string, onYes func(m *model) tea.Cmd) {
	m.confirm = &confirmModel{
		message: message,
		yes:     m.labels.Yes,
		no:      m.labels.No,
		onYes:   onYes,
	}
}

func (m *model) setLanguage(lang models.Language) {
	m.labels = app.For(lang)
}

func (m model) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.confirm != nil {
		return appStyle.Render(m.confirm.View())
	}

	var body string
	switch m.active {
	case tabHome:
		body = m.viewHome()
	case tabGames:
		body = m.viewGames()
	case tabCalendar:
		body = m.viewCalendar()
	case tabChat:
		body = m.viewChat()
	case tabAbout:
		body = m.viewAbout()
	}

	out := m.viewTabs() + "\n\n" + body
	if m.status != "" {
		out += "\n\n  " + statusStyle.Render(m.status)
	}
	if !m.typing() {
		out += "\n  " + helpStyle.Render("1-5 / tab  q "+m.labels.Quit)
	}
	return appStyle.Render(out)
}

func (m model) viewTabs() string {
	names := [tabCount]string{
		m.labels.TabHome,
		m.labels.TabGames,
		m.labels.TabCalendar,
		m.labels.TabChat,
		m.labels.TabAbout,
	}

	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := string(rune('1'+i)) + " " + name
		if tab(i) == m.active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "│")
}
