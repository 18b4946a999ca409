package service

import (
	"errors"
	"fmt"
)

var (
	ErrOwnFriendCode   = errors.New("cannot add yourself as a friend")
	ErrDuplicateFriend = errors.New("friend already added")
	ErrFriendNotFound  = errors.New("friend not found")
	ErrFutureStartDate = errors.New("start date is in the future")

	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// ValidationError rejects user input. Reason is one of the sentinels above or
// a validators error, so callers match it with [errors.Is].
type ValidationError struct {
	Field  string
	Reason error
}

func newValidationError(field string, reason error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
