// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RelationshipProfile holds the couple's names and the moment the
// relationship started. It is persisted as three separate key-value entries
// (name1, name2, startDate).
type RelationshipProfile struct {
	// PartnerNameA is the first partner's name. Empty means "not set".
	PartnerNameA string

	// PartnerNameB is the second partner's name. Empty means "not set".
	PartnerNameB string

	// StartDateTime is the instant the relationship started.
	StartDateTime time.Time
}

// DefaultProfile returns the profile used on first run and after a reset:
// both names empty and the start set to now.
func DefaultProfile(now time.Time) RelationshipProfile {
	return RelationshipProfile{StartDateTime: now}
}
