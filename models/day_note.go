// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultEmoji is the marker a day note gets when the user does not pick one.
// A note whose text is empty and whose emoji equals DefaultEmoji is not stored.
const DefaultEmoji = "❤️"

// EmojiPalette lists the markers offered by the calendar editor.
var EmojiPalette = []string{
	"❤️", "💕", "💖", "💗", "💝", "💘", "😍", "🥰", "😘", "💑",
	"👫", "🌹", "🎉", "🎂", "🎁", "⭐", "✨", "🌟", "💫", "🔥",
}

// DayNote is a note and an emoji marker attached to a calendar day.
type DayNote struct {
	// DateKey is the "Y-M-D" key without zero padding (e.g. "2024-6-15").
	DateKey string `json:"date"`
	Note    string `json:"note"`
	Emoji   string `json:"emoji"`
}

// DayNotes maps date keys to notes. It is persisted as a single JSON object.
type DayNotes map[string]DayNote

// DayCell is one cell of a month grid. Blank cells pad the first week and
// carry Day == 0.
type DayCell struct {
	Blank   bool
	Day     int
	DateKey string
	IsToday bool
	Note    *DayNote
}
