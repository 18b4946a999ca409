// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/days-together/internal/app"
	"github.com/MKhiriev/days-together/internal/service"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/internal/validators"
)

// humanizeError turns service errors into translated messages for the error
// overlay.
func humanizeError(err error, l app.Labels) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrOwnFriendCode):
		return l.CannotAddYourself
	case errors.Is(err, service.ErrDuplicateFriend):
		return l.FriendAlreadyAdded
	case errors.Is(err, validators.ErrEmptyFriendCode):
		return l.EnterFriendCode
	case errors.Is(err, validators.ErrEmptyFriendName):
		return l.EnterFriendName
	case errors.Is(err, validators.ErrEmptyDisplayName):
		return l.EmptyName
	case errors.Is(err, service.ErrFutureStartDate), errors.Is(err, validators.ErrInvalidDateKey):
		return l.InvalidDate
	case errors.Is(err, validators.ErrInvalidEmoji):
		return l.InvalidEmoji
	case errors.Is(err, store.ErrStorageRead), errors.Is(err, store.ErrStorageWrite):
		return l.StorageError
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return l.InvalidInput
	}

	return err.Error()
}
