package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/models"
)

const statusTTL = 3 * time.Second

type elapsedMsg models.Elapsed

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// waitForElapsed delivers the next value published by the tracker.
func waitForElapsed(ch <-chan models.Elapsed) tea.Cmd {
	return func() tea.Msg {
		return elapsedMsg(<-ch)
	}
}

// publishElapsed keeps only the newest value in ch and never blocks.
func publishElapsed(ch chan models.Elapsed, e models.Elapsed) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- e:
	default:
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
