// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Game is an entry of the static couple games catalog.
type Game struct {
	ID    int
	Emoji string

	// Title and Description are keyed by language.
	Title       map[Language]string
	Description map[Language]string
}
