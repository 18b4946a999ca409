package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/internal/service"
	"github.com/MKhiriev/days-together/models"
)

const (
	focusPalette = iota
	focusCustomEmoji
	focusNote
	editorFocusCount
)

type calendarState struct {
	year   int
	month  time.Month
	day    int
	editor *noteEditor
}

type noteEditor struct {
	dateKey string
	exists  bool
	palette int
	custom  textinput.Model
	note    textarea.Model
	focus   int
}

func newCalendarState(now time.Time) calendarState {
	return calendarState{year: now.Year(), month: now.Month(), day: now.Day()}
}

func (c calendarState) dateKey() string {
	return service.DateKey(c.year, c.month, c.day)
}

// moveDays shifts the selection, crossing month boundaries.
func (c *calendarState) moveDays(delta int) {
	t := time.Date(c.year, c.month, c.day+delta, 0, 0, 0, 0, time.UTC)
	c.year, c.month, c.day = t.Year(), t.Month(), t.Day()
}

// moveMonths shifts the shown month and clamps the selected day.
func (c *calendarState) moveMonths(delta int) {
	first := time.Date(c.year, c.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	c.year, c.month, c.day = first.Year(), first.Month(), min(c.day, last)
}

func (m model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.calendar.editor != nil {
		return m.updateNoteEditor(msg)
	}

	switch {
	case key.Matches(msg, keys.left):
		m.calendar.moveDays(-1)
	case key.Matches(msg, keys.right):
		m.calendar.moveDays(1)
	case key.Matches(msg, keys.up):
		m.calendar.moveDays(-7)
	case key.Matches(msg, keys.down):
		m.calendar.moveDays(7)
	case key.Matches(msg, keys.prevMonth):
		m.calendar.moveMonths(-1)
	case key.Matches(msg, keys.nextMonth):
		m.calendar.moveMonths(1)
	case key.Matches(msg, keys.today):
		m.calendar = newCalendarState(time.Now().In(m.opts.Zone))
	case key.Matches(msg, keys.enter):
		m.openNoteEditor()
	case key.Matches(msg, keys.remove):
		m.askDeleteNote(m.calendar.dateKey())
	}
	return m, nil
}

func (m *model) openNoteEditor() {
	dateKey := m.calendar.dateKey()
	existing, exists := m.services.CalendarService.Note(dateKey)

	custom := newInput("🙂", 8)
	note := textarea.New()
	note.Placeholder = m.labels.AddNote
	note.SetWidth(40)
	note.SetHeight(4)

	editor := &noteEditor{dateKey: dateKey, exists: exists, custom: custom, note: note}
	if exists {
		note.SetValue(existing.Note)
		editor.note = note
		if idx := slices.Index(models.EmojiPalette, existing.Emoji); idx >= 0 {
			editor.palette = idx
		} else {
			editor.custom.SetValue(existing.Emoji)
		}
	}

	m.calendar.editor = editor
}

func (m *model) askDeleteNote(dateKey string) {
	if _, ok := m.services.CalendarService.Note(dateKey); !ok {
		return
	}

	m.ask(m.labels.DeleteConfirm, func(m *model) tea.Cmd {
		m.services.CalendarService.Delete(m.ctx, dateKey)
		m.calendar.editor = nil
		return nil
	})
}

func (m model) updateNoteEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.calendar.editor

	switch {
	case key.Matches(msg, keys.esc):
		m.calendar.editor = nil
		return m, nil
	case key.Matches(msg, keys.save):
		return m.saveNote()
	case msg.String() == "ctrl+d":
		m.askDeleteNote(ed.dateKey)
		return m, nil
	case key.Matches(msg, keys.tab):
		ed.setFocus((ed.focus + 1) % editorFocusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		ed.setFocus((ed.focus + editorFocusCount - 1) % editorFocusCount)
		return m, nil
	}

	var cmd tea.Cmd
	switch ed.focus {
	case focusPalette:
		switch msg.String() {
		case "left", "h":
			ed.palette = (ed.palette + len(models.EmojiPalette) - 1) % len(models.EmojiPalette)
		case "right", "l":
			ed.palette = (ed.palette + 1) % len(models.EmojiPalette)
		case "enter":
			return m.saveNote()
		}
	case focusCustomEmoji:
		if key.Matches(msg, keys.enter) {
			return m.saveNote()
		}
		ed.custom, cmd = ed.custom.Update(msg)
	case focusNote:
		ed.note, cmd = ed.note.Update(msg)
	}
	return m, cmd
}

func (e *noteEditor) setFocus(focus int) {
	e.custom.Blur()
	e.note.Blur()

	e.focus = focus
	switch focus {
	case focusCustomEmoji:
		e.custom.Focus()
	case focusNote:
		e.note.Focus()
	}
}

// emoji prefers a typed marker over the palette selection.
func (e *noteEditor) emoji() string {
	if v := strings.TrimSpace(e.custom.Value()); v != "" {
		return v
	}
	return models.EmojiPalette[e.palette]
}

func (m model) saveNote() (tea.Model, tea.Cmd) {
	ed := m.calendar.editor

	if _, err := m.services.CalendarService.Upsert(m.ctx, ed.dateKey, ed.note.Value(), ed.emoji()); err != nil {
		m.showError(err)
		return m, nil
	}

	m.calendar.editor = nil
	return m, nil
}

func (m model) viewCalendar() string {
	if m.calendar.editor != nil {
		return m.viewNoteEditor()
	}

	l := m.labels
	c := m.calendar

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", l.Months[c.month-1], c.year)) + "\n\n")

	for _, wd := range l.WeekDays {
		b.WriteString(weekdayStyle.Render(wd))
	}
	b.WriteString("\n")

	col := 0
	for cell := range m.services.CalendarService.Grid(c.year, c.month) {
		b.WriteString(renderDayCell(cell, cell.Day == c.day))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if note, ok := m.services.CalendarService.Note(c.dateKey()); ok {
		b.WriteString(c.dateKey() + "  " + note.Emoji + "  " + fitText(note.Note, 60) + "\n")
	} else {
		b.WriteString(helpStyle.Render(c.dateKey()) + "\n")
	}

	return renderPage(l.CalendarTitle, b.String(), "←↑↓→  [ ]  t  enter "+l.AddNote+"  d "+l.Delete)
}

func renderDayCell(cell models.DayCell, selected bool) string {
	if cell.Blank {
		return cellStyle.Render("")
	}

	text := fmt.Sprintf("%2d", cell.Day)
	if cell.Note != nil {
		text += cell.Note.Emoji
	}

	switch {
	case selected:
		return selectedCellStyle.Render(text)
	case cell.IsToday:
		return todayCellStyle.Render(text)
	default:
		return cellStyle.Render(text)
	}
}

func (m model) viewNoteEditor() string {
	l := m.labels
	ed := m.calendar.editor

	var b strings.Builder
	b.WriteString(titleStyle.Render(l.ChooseEmoji) + "\n")
	for i, e := range models.EmojiPalette {
		if i == ed.palette {
			b.WriteString("[" + e + "]")
		} else {
			b.WriteString(" " + e + " ")
		}
		if i == len(models.EmojiPalette)/2-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if ed.focus == focusPalette {
		b.WriteString(helpStyle.Render("←/→") + "\n")
	}
	b.WriteString("\n" + ed.custom.View() + "\n\n")
	b.WriteString(titleStyle.Render(l.AddNote) + "\n")
	b.WriteString(ed.note.View() + "\n")

	hotKeys := "tab  ctrl+s " + l.Save + "  esc " + l.Cancel
	if ed.exists {
		hotKeys += "  ctrl+d " + l.DeleteNote
	}
	return renderPage(ed.dateKey, b.String(), hotKeys)
}
