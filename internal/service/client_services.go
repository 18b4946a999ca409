package service

import (
	"github.com/MKhiriev/days-together/internal/config"
	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/internal/utils"
	"github.com/MKhiriev/days-together/internal/validators"
	"github.com/MKhiriev/days-together/internal/workers"
	"github.com/MKhiriev/days-together/models"
)

type ClientServices struct {
	ProfileService  ProfileService
	ElapsedTracker  ElapsedTracker
	CalendarService CalendarService
	ChatService     ChatService
	Preferences     Preferences
	GameCatalog     GameCatalog
	ExportService   ExportService
	AppInfoService  AppInfoService

	// Workers holds every background job for shutdown.
	Workers *workers.Workers
}

func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, buildInfo models.AppBuildInfo, log *logger.Logger) *ClientServices {
	validator := validators.NewInputValidator()
	zone := cfg.App.ReferenceZone

	profileSvc := NewProfileService(storages.KV, log)
	tracker := newElapsedTracker(profileSvc, zone, log)

	return &ClientServices{
		ProfileService:  profileSvc,
		ElapsedTracker:  tracker,
		CalendarService: NewCalendarService(storages.KV, validator, zone, log),
		ChatService:     NewChatService(storages.KV, validator, utils.NewFriendCodeGenerator(), utils.NewUUIDGenerator(), log),
		Preferences:     NewPreferences(storages.KV, cfg.App.Language, log),
		GameCatalog:     NewGameCatalog(),
		ExportService:   storages.Exporter,
		AppInfoService:  NewAppInfoService(buildInfo, log),
		Workers:         workers.NewWorkers(tracker.Worker()),
	}
}
