package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-d SQLite database file
//	-lang forced UI language (en, es)
//	-utc-offset reference zone offset in hours (e.g. -6)
//	-elapsed-interval elapsed tracker period (e.g. 1m)
//	-export-dir directory for YAML exports
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("days-together", flag.ContinueOnError)

	var (
		dsn             string
		language        string
		utcOffset       string
		elapsedInterval time.Duration
		exportDir       string
		jsonConfigPath  string
	)

	fs.StringVar(&dsn, "d", "", "SQLite database file")
	fs.StringVar(&language, "lang", "", "UI language (en, es)")
	fs.StringVar(&utcOffset, "utc-offset", "", "Reference zone offset in hours (e.g. -6)")
	fs.DurationVar(&elapsedInterval, "elapsed-interval", 0, "Elapsed tracker period (e.g. 1m)")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for YAML exports")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Language:           language,
			ReferenceUTCOffset: utcOffset,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Workers:      Workers{ElapsedInterval: elapsedInterval},
		Export:       Export{Dir: exportDir},
		JSONFilePath: jsonConfigPath,
	}, nil
}
