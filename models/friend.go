// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Friend is an entry of the local friend list. Codes are unique in the list.
type Friend struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
