package validators

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/forPelevin/gomoji"

	"github.com/MKhiriev/days-together/models"
)

// Field names accepted by [InputValidator.Validate].
const (
	FieldCode        = "code"
	FieldName        = "name"
	FieldDisplayName = "display_name"
	FieldDateKey     = "date_key"
	FieldEmoji       = "emoji"
	FieldText        = "text"
	FieldID          = "id"
)

// InputValidator checks user input reaching the services.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Friend:
		return v.validateFriend(value, fields...)
	case *models.Friend:
		return v.validateFriend(*value, fields...)

	case models.DayNote:
		return v.validateDayNote(value, fields...)
	case *models.DayNote:
		return v.validateDayNote(*value, fields...)

	case models.LocalIdentity:
		return v.validateIdentity(value, fields...)
	case *models.LocalIdentity:
		return v.validateIdentity(*value, fields...)

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateFriend(friend models.Friend, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(friend.Code) == "" {
				return ErrEmptyFriendCode
			}
		case FieldName:
			if strings.TrimSpace(friend.Name) == "" {
				return ErrEmptyFriendName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateDayNote(note models.DayNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateKey, FieldEmoji}
	}

	for _, f := range fields {
		switch f {
		case FieldDateKey:
			if !ValidDateKey(note.DateKey) {
				return ErrInvalidDateKey
			}
		case FieldEmoji:
			if err := ValidateEmoji(note.Emoji); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateIdentity(identity models.LocalIdentity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode, FieldDisplayName}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(identity.Code) == "" {
				return ErrEmptyFriendCode
			}
		case FieldDisplayName:
			if strings.TrimSpace(identity.DisplayName) == "" {
				return ErrEmptyDisplayName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateMessage(msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if msg.ID == "" {
				return ErrEmptyMessageID
			}
		case FieldText:
			if strings.TrimSpace(msg.Text) == "" {
				return ErrEmptyMessageText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateEmoji accepts any palette marker, otherwise exactly one emoji with
// no surrounding text.
func ValidateEmoji(emoji string) error {
	if slices.Contains(models.EmojiPalette, emoji) {
		return nil
	}

	if len(gomoji.RemoveEmojis(emoji)) > 0 {
		return ErrInvalidEmoji
	}

	if len(gomoji.FindAll(emoji)) != 1 {
		return ErrInvalidEmoji
	}

	return nil
}

// ValidDateKey reports whether key is a "Y-M-D" key without zero padding that
// names a real calendar day.
func ValidDateKey(key string) bool {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || (len(p) > 1 && p[0] == '0') {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if month > 12 {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}
