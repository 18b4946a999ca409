package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/days-together/internal/config"
	"github.com/MKhiriev/days-together/internal/logger"
)

// ClientStorages groups the client storage layer into a single value passed
// to the service layer.
type ClientStorages struct {
	// KV is the key-value repository every feature persists through.
	KV KeyValueRepository
	// Exporter writes YAML snapshots of KV.
	Exporter *SnapshotExporter

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.Storage.DB.DSN, applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueRepository(db, logger)

	return &ClientStorages{
		KV:       kv,
		Exporter: NewSnapshotExporter(kv, cfg.Export.Dir, logger),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
