// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == English || l == Spanish
}
