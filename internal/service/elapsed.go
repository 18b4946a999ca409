// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/days-together/models"
)

// ComputeElapsed returns the whole days and remainder hours between start and
// now, both read in zone. A start after now yields zero.
func ComputeElapsed(start, now time.Time, zone *time.Location) models.Elapsed {
	if zone == nil {
		zone = time.UTC
	}

	d := now.In(zone).Sub(start.In(zone))
	if d <= 0 {
		return models.Elapsed{}
	}

	totalHours := int64(d / time.Hour)
	return models.Elapsed{
		Days:  totalHours / 24,
		Hours: int(totalHours % 24),
	}
}

// Milestones reports progress towards every entry of models.MilestoneDays.
func Milestones(e models.Elapsed) []models.Milestone {
	result := make([]models.Milestone, 0, len(models.MilestoneDays))
	for _, days := range models.MilestoneDays {
		m := models.Milestone{Days: days, Completed: e.Days >= days}
		if !m.Completed {
			m.DaysToGo = days - e.Days
		}
		result = append(result, m)
	}
	return result
}
