package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/internal/service"
)

// dateInputLayout is how the start date is typed and shown, in the reference zone.
const dateInputLayout = "2006-01-02 15:04"

type homeMode int

const (
	homeView homeMode = iota
	homeEditNames
	homeEditDate
)

type homeState struct {
	mode   homeMode
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	return in
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.home.mode == homeView {
		switch {
		case key.Matches(msg, keys.editNames):
			m.startEditNames()
		case key.Matches(msg, keys.editDate):
			m.startEditDate()
		case key.Matches(msg, keys.reset):
			m.ask(m.labels.ResetConfirm, func(m *model) tea.Cmd {
				m.services.ProfileService.Reset(m.ctx)
				m.elapsed = m.services.ElapsedTracker.Current()
				m.status = m.labels.DataCleared
				return clearStatusAfter()
			})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.home = homeState{}
		return m, nil
	case key.Matches(msg, keys.tab, keys.backtab):
		if len(m.home.inputs) > 1 {
			m.home.inputs[m.home.focus].Blur()
			m.home.focus = (m.home.focus + 1) % len(m.home.inputs)
			m.home.inputs[m.home.focus].Focus()
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitHome()
	}

	var cmd tea.Cmd
	m.home.inputs[m.home.focus], cmd = m.home.inputs[m.home.focus].Update(msg)
	return m, cmd
}

func (m *model) startEditNames() {
	profile := m.services.ProfileService.Profile()

	nameA := newInput(m.labels.PartnerA, 30)
	nameA.SetValue(profile.PartnerNameA)
	nameA.Focus()

	nameB := newInput(m.labels.PartnerB, 30)
	nameB.SetValue(profile.PartnerNameB)

	m.home = homeState{mode: homeEditNames, inputs: []textinput.Model{nameA, nameB}}
}

func (m *model) startEditDate() {
	start := m.services.ProfileService.Profile().StartDateTime

	date := newInput(m.labels.StartDateHint, 20)
	date.SetValue(start.In(m.opts.Zone).Format(dateInputLayout))
	date.CharLimit = len(dateInputLayout)
	date.Focus()

	m.home = homeState{mode: homeEditDate, inputs: []textinput.Model{date}}
}

func (m model) submitHome() (tea.Model, tea.Cmd) {
	switch m.home.mode {
	case homeEditNames:
		m.services.ProfileService.SetNames(m.ctx,
			strings.TrimSpace(m.home.inputs[0].Value()),
			strings.TrimSpace(m.home.inputs[1].Value()),
		)
	case homeEditDate:
		start, err := time.ParseInLocation(dateInputLayout, strings.TrimSpace(m.home.inputs[0].Value()), m.opts.Zone)
		if err != nil {
			m.overlay = &errorOverlayModel{title: m.labels.Error, message: m.labels.InvalidDate, hint: m.labels.Close}
			return m, nil
		}
		if _, err := m.services.ProfileService.SetStartDate(m.ctx, start); err != nil {
			m.showError(err)
			return m, nil
		}
	}

	m.home = homeState{}
	m.elapsed = m.services.ElapsedTracker.Current()
	return m, nil
}

func (m model) viewHome() string {
	l := m.labels
	profile := m.services.ProfileService.Profile()

	var b strings.Builder

	switch m.home.mode {
	case homeEditNames:
		b.WriteString(l.PartnerA + ": " + m.home.inputs[0].View() + "\n")
		b.WriteString(l.PartnerB + ": " + m.home.inputs[1].View() + "\n")
		return renderPage(l.HomeTitle, b.String(), "tab  enter "+l.Save+"  esc "+l.Cancel)
	case homeEditDate:
		b.WriteString(l.StartDate + " (" + m.opts.Zone.String() + "): " + m.home.inputs[0].View() + "\n")
		return renderPage(l.HomeTitle, b.String(), "enter "+l.Save+"  esc "+l.Cancel)
	}

	if profile.PartnerNameA != "" || profile.PartnerNameB != "" {
		b.WriteString(fmt.Sprintf("%s %s %s\n\n", profile.PartnerNameA, l.And, profile.PartnerNameB))
	}

	b.WriteString(counterStyle.Render(fmt.Sprintf("%d %s   %d %s", m.elapsed.Days, l.Days, m.elapsed.Hours, l.Hours)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s (%s)\n\n",
		l.Since, profile.StartDateTime.In(m.opts.Zone).Format(dateInputLayout), m.opts.Zone.String()))

	b.WriteString(titleStyle.Render(l.UpcomingMilestones) + "\n")
	for _, ms := range service.Milestones(m.elapsed) {
		if ms.Completed {
			b.WriteString(fmt.Sprintf("  %4d %s  %s\n", ms.Days, l.Days, l.Completed))
		} else {
			b.WriteString(fmt.Sprintf("  %4d %s  %d %s\n", ms.Days, l.Days, ms.DaysToGo, l.DaysToGo))
		}
	}

	return renderPage(l.HomeTitle, b.String(), "e "+l.PartnerA+"/"+l.PartnerB+"  s "+l.StartDate+"  r "+l.Reset)
}
