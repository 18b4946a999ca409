// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/internal/app"
	"github.com/MKhiriev/days-together/models"
)

var languageNames = map[models.Language]string{
	models.English: "English",
	models.Spanish: "Español",
}

func (m model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.language):
		next := models.Spanish
		if m.services.Preferences.Language() == models.Spanish {
			next = models.English
		}
		if err := m.services.Preferences.Set(m.ctx, next); err != nil {
			m.showError(err)
			return m, nil
		}
		m.setLanguage(m.services.Preferences.Language())
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	}
	return m, nil
}

func (m model) cmdExport() tea.Cmd {
	ctx := m.ctx
	exporter := m.services.ExportService
	return func() tea.Msg {
		path, err := exporter.Export(ctx)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m model) viewAbout() string {
	l := m.labels
	info := m.services.AppInfoService.GetBuildInfo(m.ctx)

	var b strings.Builder
	b.WriteString(titleStyle.Render(app.AppName) + "\n")
	b.WriteString(l.AboutDescription + "\n\n")

	for _, f := range l.Features {
		b.WriteString("• " + titleStyle.Render(f.Title) + "\n")
		b.WriteString("  " + helpStyle.Render(f.Description) + "\n")
	}

	b.WriteString("\n" + l.Language + ": " + languageNames[m.services.Preferences.Language()] + "\n\n")
	b.WriteString(l.Version + ": " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString(l.BuildDate + ": " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString(l.BuildCommit + ": " + valueOrNA(info.BuildCommit()))

	return renderPage(l.AboutTitle, b.String(), "L "+l.Language+"  x "+l.Export)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
