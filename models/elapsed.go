// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Elapsed is the derived time-together value shown on the home screen.
type Elapsed struct {
	// Days is the number of whole 24-hour periods since the start.
	Days int64

	// Hours is the remainder of whole hours within the current day, 0..23.
	Hours int
}

// Milestone describes a day-count goal and the progress towards it.
type Milestone struct {
	Days      int64
	Completed bool
	DaysToGo  int64
}

// MilestoneDays are the day counts celebrated by the home screen.
var MilestoneDays = []int64{100, 365, 500, 1000}
