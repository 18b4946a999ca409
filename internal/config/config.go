// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds user-facing application settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the device-local key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Export holds settings for data exports.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Language forces the UI language ("en" or "es"). When empty the saved
	// preference or the device locale decides.
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// ReferenceUTCOffset is the offset in whole hours of the fixed zone used
	// for elapsed-time and calendar computations (e.g. "-6").
	// Env: APP_REFERENCE_UTC_OFFSET
	ReferenceUTCOffset string `env:"REFERENCE_UTC_OFFSET"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// ElapsedInterval is how often the elapsed-time tracker recomputes.
	// Env: WORKERS_ELAPSED_INTERVAL
	ElapsedInterval time.Duration `env:"ELAPSED_INTERVAL"`
}

// Export holds settings for YAML data exports.
type Export struct {
	// Dir is the directory export files are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// Defaults used when no source sets a value.
const (
	DefaultDSN                = "days-together.db"
	DefaultReferenceUTCOffset = "-6"
	DefaultElapsedInterval    = time.Minute
	DefaultExportDir          = "."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{ReferenceUTCOffset: DefaultReferenceUTCOffset},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{ElapsedInterval: DefaultElapsedInterval},
		Export:  Export{Dir: DefaultExportDir},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Returns an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
