package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/days-together/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Language forces the UI language. Empty means "not forced".
	Language models.Language
	// ReferenceZone is the fixed zone used for elapsed-time and calendar math.
	ReferenceZone *time.Location
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ElapsedInterval defines how often the elapsed tracker recomputes.
	ElapsedInterval time.Duration
}

// ClientExport contains data export settings.
type ClientExport struct {
	Dir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Workers ClientWorkers
	Export  ClientExport
}

// GetClientConfig builds and validates the client configuration view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	zone, err := referenceZone(cfg.App.ReferenceUTCOffset)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Language:      models.Language(cfg.App.Language),
			ReferenceZone: zone,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{ElapsedInterval: cfg.Workers.ElapsedInterval},
		Export:  ClientExport{Dir: cfg.Export.Dir},
	}

	return clientCfg, clientCfg.validate()
}
