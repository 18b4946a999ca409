// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/service"
)

// Options tunes the terminal UI.
type Options struct {
	// ElapsedInterval is how often the home screen counter is recomputed.
	ElapsedInterval time.Duration
	// Zone is the reference zone dates are shown and entered in.
	Zone *time.Location
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	if opts.Zone == nil {
		opts.Zone = time.UTC
	}

	return &TUI{
		services: services,
		opts:     opts,
		logger:   log.WithComponent("tui"),
	}, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.services, t.opts)
	defer t.services.ElapsedTracker.Stop()

	t.logger.Debug().Str("func", "TUI.Run").Msg("starting terminal ui")

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
