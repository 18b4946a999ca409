package store

import (
	"database/sql"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/migrations"
)

// DB wraps the SQLite connection shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}
