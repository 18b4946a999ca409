// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDisplayName is assigned to a freshly generated local identity.
const DefaultDisplayName = "User"

// LocalIdentity is the device-local chat identity. The code is generated
// once and never regenerated.
type LocalIdentity struct {
	// Code is a six digit numeric string in [100000, 999999).
	Code        string
	DisplayName string
}
