// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/days-together/models"
)

func TestComputeElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, cst)

	tests := []struct {
		name string
		now  time.Time
		want models.Elapsed
	}{
		{
			name: "two days five hours",
			now:  time.Date(2024, 1, 3, 5, 0, 0, 0, cst),
			want: models.Elapsed{Days: 2, Hours: 5},
		},
		{
			name: "same instant",
			now:  start,
			want: models.Elapsed{},
		},
		{
			name: "partial hour truncates",
			now:  time.Date(2024, 1, 1, 0, 59, 59, 0, cst),
			want: models.Elapsed{},
		},
		{
			name: "exactly one day",
			now:  time.Date(2024, 1, 2, 0, 0, 0, 0, cst),
			want: models.Elapsed{Days: 1},
		},
		{
			name: "now expressed in another zone",
			now:  time.Date(2024, 1, 3, 11, 30, 0, 0, time.UTC),
			want: models.Elapsed{Days: 2, Hours: 5},
		},
		{
			name: "future start clamps to zero",
			now:  time.Date(2023, 12, 31, 0, 0, 0, 0, cst),
			want: models.Elapsed{},
		},
		{
			name: "leap year",
			now:  time.Date(2025, 1, 1, 23, 0, 0, 0, cst),
			want: models.Elapsed{Days: 366, Hours: 23},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeElapsed(start, tt.now, cst))
		})
	}
}

func TestComputeElapsed_HostZoneDoesNotMatter(t *testing.T) {
	start := time.Date(2024, 3, 9, 12, 0, 0, 0, cst)
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, cst)

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// across a DST switch of the host zone
	got := ComputeElapsed(start.In(ny), now.In(ny), cst)
	assert.Equal(t, models.Elapsed{Days: 2}, got)
	assert.Equal(t, got, ComputeElapsed(start, now, nil))
}

func TestComputeElapsed_Monotonic(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, cst)
	prev := models.Elapsed{}

	for h := 0; h < 24*40; h += 7 {
		now := start.Add(time.Duration(h)*time.Hour + 13*time.Minute)
		got := ComputeElapsed(start, now, cst)

		assert.True(t, got.Days > prev.Days || (got.Days == prev.Days && got.Hours >= prev.Hours),
			"elapsed went backwards at +%dh: %+v < %+v", h, got, prev)
		assert.GreaterOrEqual(t, got.Hours, 0)
		assert.Less(t, got.Hours, 24)
		prev = got
	}
}

func TestMilestones(t *testing.T) {
	got := Milestones(models.Elapsed{Days: 365, Hours: 3})

	assert.Equal(t, []models.Milestone{
		{Days: 100, Completed: true},
		{Days: 365, Completed: true},
		{Days: 500, DaysToGo: 135},
		{Days: 1000, DaysToGo: 635},
	}, got)
}

func TestMilestones_Zero(t *testing.T) {
	got := Milestones(models.Elapsed{})

	for i, m := range got {
		assert.False(t, m.Completed)
		assert.Equal(t, models.MilestoneDays[i], m.DaysToGo)
	}
}
