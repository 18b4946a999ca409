package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/service"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   log.WithComponent("app"),
	}, nil
}

// Run loads every component, shows the UI and saves preferences on exit.
func (a *App) Run(ctx context.Context) error {
	lang := a.services.Preferences.Load(ctx)
	identity := a.services.ChatService.EnsureIdentity(ctx)
	a.services.ProfileService.Load(ctx)
	a.services.CalendarService.Load(ctx)
	a.services.ChatService.LoadFriends(ctx)

	a.logger.Info().
		Str("func", "App.Run").
		Str("language", string(lang)).
		Str("code", identity.Code).
		Msg("client state loaded")

	defer a.shutdown(ctx)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	a.services.Workers.StopAll()

	// the run context may already be cancelled
	if err := a.services.Preferences.Save(context.WithoutCancel(ctx)); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.shutdown").Msg("failed to save preferences")
	}

	a.logger.Info().Str("func", "App.shutdown").Msg("client stopped")
}
