package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies all pending embedded migrations to the SQLite database.
// Goose output is written to log; a nil log discards it.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(newGooseLogger(log))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger adapts the zerolog wrapper to goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) goose.Logger {
	if log == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{log: log.WithComponent("goose")}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Msgf(format, v...)
}

// Fatalf logs at error level instead of exiting; goose.Up still returns the error.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Msgf(format, v...)
}
