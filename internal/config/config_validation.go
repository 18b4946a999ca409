// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Language != "" && !cfg.App.Language.Valid() {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidAppConfigs, cfg.App.Language)
	}

	if cfg.Workers.ElapsedInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Export.Dir == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}

// referenceZone converts a whole-hour offset such as "-6" into a fixed zone
// named after the offset ("UTC-6").
func referenceZone(offset string) (*time.Location, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(offset))
	if err != nil {
		return nil, fmt.Errorf("%w: reference utc offset %q: %v", ErrInvalidAppConfigs, offset, err)
	}
	if hours < -12 || hours > 14 {
		return nil, fmt.Errorf("%w: reference utc offset %d out of range", ErrInvalidAppConfigs, hours)
	}

	name := "UTC"
	if hours != 0 {
		name = fmt.Sprintf("UTC%+d", hours)
	}

	return time.FixedZone(name, hours*60*60), nil
}
