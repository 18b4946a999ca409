package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFriendCode  = errors.New("friend code is required")
	ErrEmptyFriendName  = errors.New("friend name is required")
	ErrEmptyDisplayName = errors.New("display name is required")
	ErrInvalidDateKey   = errors.New("invalid date key")
	ErrInvalidEmoji     = errors.New("marker must be a single emoji")
	ErrEmptyMessageText = errors.New("message text is required")
	ErrEmptyMessageID   = errors.New("message id is required")
)
