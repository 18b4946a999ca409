// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the persisted relationship profile, calendar notes, chat identity
// and language preference, hands control to the terminal UI and stops the
// background elapsed-time tracker on exit.
package client
