package service

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/internal/validators"
	"github.com/MKhiriev/days-together/models"
)

type chatService struct {
	kv        store.KeyValueRepository
	validator validators.Validator
	codes     Generator
	ids       Generator
	now       func() time.Time
	logger    *logger.Logger

	// writeMu is held from the in-memory swap until the storage write
	// returns, so the last write to storage is the last swap in memory.
	writeMu  sync.Mutex
	mu       sync.RWMutex
	identity models.LocalIdentity
	friends  []models.Friend
	selected *models.Friend
	messages []models.Message
}

// NewChatService creates the local chat store. codes generates the identity
// code on first run and ids generates message ids.
func NewChatService(kv store.KeyValueRepository, validator validators.Validator, codes, ids Generator, log *logger.Logger) ChatService {
	return &chatService{
		kv:        kv,
		validator: validator,
		codes:     codes,
		ids:       ids,
		now:       time.Now,
		logger:    log.WithComponent("chat"),
	}
}

// ── identity ─────────────────────────────────────────────────────────────────

func (c *chatService) EnsureIdentity(ctx context.Context) models.LocalIdentity {
	identity := models.LocalIdentity{DisplayName: models.DefaultDisplayName}
	toPersist := map[string]string{}

	code, ok, err := c.kv.Get(ctx, store.KeyUserCode)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.EnsureIdentity").Msg("failed to read user code")
	}
	if ok && c.validator.Validate(ctx, models.LocalIdentity{Code: code}, validators.FieldCode) == nil {
		identity.Code = code
	} else {
		identity.Code = c.codes.Generate()
		toPersist[store.KeyUserCode] = identity.Code
		c.logger.Info().Str("func", "chatService.EnsureIdentity").Str("code", identity.Code).Msg("generated local identity")
	}

	name, ok, err := c.kv.Get(ctx, store.KeyUserName)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.EnsureIdentity").Msg("failed to read user name")
	}
	if ok && name != "" {
		identity.DisplayName = name
	} else {
		toPersist[store.KeyUserName] = identity.DisplayName
	}

	if len(toPersist) > 0 {
		if err := c.kv.SetMany(ctx, toPersist); err != nil {
			c.logger.Warn().Err(err).Str("func", "chatService.EnsureIdentity").Msg("failed to persist identity")
		}
	}

	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()

	return identity
}

func (c *chatService) Identity() models.LocalIdentity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

func (c *chatService) SetDisplayName(ctx context.Context, name string) (models.LocalIdentity, error) {
	name = strings.TrimSpace(name)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	identity := c.identity
	identity.DisplayName = name
	if err := c.validator.Validate(ctx, identity, validators.FieldDisplayName); err != nil {
		current := c.identity
		c.mu.Unlock()
		return current, newValidationError(validators.FieldDisplayName, err)
	}
	c.identity = identity
	c.mu.Unlock()

	if err := c.kv.Set(ctx, store.KeyUserName, name); err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.SetDisplayName").Msg("failed to persist display name")
	}

	return identity, nil
}

// ── friends ──────────────────────────────────────────────────────────────────

func (c *chatService) LoadFriends(ctx context.Context) []models.Friend {
	var friends []models.Friend

	raw, ok, err := c.kv.Get(ctx, store.KeyFriends)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("func", "chatService.LoadFriends").Msg("failed to read friends")
	case ok:
		if err := json.Unmarshal([]byte(raw), &friends); err != nil {
			c.logger.Warn().Err(err).Str("func", "chatService.LoadFriends").Msg("stored friends are malformed, starting empty")
			friends = nil
		}
	}

	c.mu.Lock()
	c.friends = friends
	c.mu.Unlock()

	return slices.Clone(friends)
}

func (c *chatService) Friends() []models.Friend {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.friends)
}

func (c *chatService) AddFriend(ctx context.Context, code, name string) ([]models.Friend, error) {
	friend := models.Friend{Code: strings.TrimSpace(code), Name: strings.TrimSpace(name)}

	if err := c.validator.Validate(ctx, friend, validators.FieldCode); err != nil {
		return c.Friends(), newValidationError(validators.FieldCode, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	if friend.Code == c.identity.Code {
		c.mu.Unlock()
		return c.Friends(), newValidationError(validators.FieldCode, ErrOwnFriendCode)
	}
	if containsFriend(c.friends, friend.Code) {
		c.mu.Unlock()
		return c.Friends(), newValidationError(validators.FieldCode, ErrDuplicateFriend)
	}
	if err := c.validator.Validate(ctx, friend, validators.FieldName); err != nil {
		c.mu.Unlock()
		return c.Friends(), newValidationError(validators.FieldName, err)
	}

	friends := withFriend(c.friends, friend)
	c.friends = friends
	c.mu.Unlock()

	c.persistFriends(ctx, friends)
	return slices.Clone(friends), nil
}

func (c *chatService) RemoveFriend(ctx context.Context, code string) []models.Friend {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	friends := withoutFriend(c.friends, code)
	c.friends = friends
	if c.selected != nil && c.selected.Code == code {
		c.selected = nil
		c.messages = nil
	}
	c.mu.Unlock()

	c.persistFriends(ctx, friends)
	return slices.Clone(friends)
}

func (c *chatService) persistFriends(ctx context.Context, friends []models.Friend) {
	if friends == nil {
		friends = []models.Friend{}
	}

	data, err := json.Marshal(friends)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.persistFriends").Msg("failed to encode friends")
		return
	}

	if err := c.kv.Set(ctx, store.KeyFriends, string(data)); err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.persistFriends").Msg("failed to persist friends")
	}
}

// ── conversation ─────────────────────────────────────────────────────────────

func (c *chatService) Select(ctx context.Context, code string) ([]models.Message, error) {
	c.mu.RLock()
	idx := slices.IndexFunc(c.friends, func(f models.Friend) bool { return f.Code == code })
	owner := c.identity.Code
	c.mu.RUnlock()

	if idx < 0 {
		return nil, ErrFriendNotFound
	}

	messages := c.loadMessages(ctx, owner, code)

	c.mu.Lock()
	// the friend may have been removed meanwhile
	idx = slices.IndexFunc(c.friends, func(f models.Friend) bool { return f.Code == code })
	if idx < 0 {
		c.mu.Unlock()
		return nil, ErrFriendNotFound
	}
	friend := c.friends[idx]
	c.selected = &friend
	c.messages = messages
	c.mu.Unlock()

	return slices.Clone(messages), nil
}

func (c *chatService) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.messages = nil
}

func (c *chatService) Selected() (models.Friend, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		return models.Friend{}, false
	}
	return *c.selected, true
}

func (c *chatService) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.messages)
}

// Send is a no-op when nothing is selected or the message does not validate.
func (c *chatService) Send(ctx context.Context, text string) []models.Message {
	msg := models.Message{Text: strings.TrimSpace(text)}
	if err := c.validator.Validate(ctx, msg, validators.FieldText); err != nil {
		return c.Messages()
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	if c.selected == nil {
		messages := slices.Clone(c.messages)
		c.mu.Unlock()
		return messages
	}

	msg.ID = c.ids.Generate()
	if err := c.validator.Validate(ctx, msg, validators.FieldID); err != nil {
		messages := slices.Clone(c.messages)
		c.mu.Unlock()
		c.logger.Warn().Err(err).Str("func", "chatService.Send").Msg("message dropped")
		return messages
	}
	msg.SenderCode = c.identity.Code
	msg.SenderName = c.identity.DisplayName
	msg.TimestampMs = c.now().UnixMilli()

	messages := append(slices.Clone(c.messages), msg)
	c.messages = messages
	key := store.MessagesKey(c.identity.Code, c.selected.Code)
	c.mu.Unlock()

	c.persistMessages(ctx, key, messages)
	return slices.Clone(messages)
}

func (c *chatService) loadMessages(ctx context.Context, owner, friend string) []models.Message {
	var messages []models.Message

	raw, ok, err := c.kv.Get(ctx, store.MessagesKey(owner, friend))
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("func", "chatService.loadMessages").Str("friend", friend).Msg("failed to read messages")
	case ok:
		if err := json.Unmarshal([]byte(raw), &messages); err != nil {
			c.logger.Warn().Err(err).Str("func", "chatService.loadMessages").Str("friend", friend).Msg("stored messages are malformed, starting empty")
			messages = nil
		}
	}

	return messages
}

func (c *chatService) persistMessages(ctx context.Context, key string, messages []models.Message) {
	data, err := json.Marshal(messages)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.persistMessages").Msg("failed to encode messages")
		return
	}

	if err := c.kv.Set(ctx, key, string(data)); err != nil {
		c.logger.Warn().Err(err).Str("func", "chatService.persistMessages").Str("key", key).Msg("failed to persist messages")
	}
}

func containsFriend(friends []models.Friend, code string) bool {
	return slices.ContainsFunc(friends, func(f models.Friend) bool { return f.Code == code })
}

func withFriend(friends []models.Friend, friend models.Friend) []models.Friend {
	return append(slices.Clone(friends), friend)
}

func withoutFriend(friends []models.Friend, code string) []models.Friend {
	return slices.DeleteFunc(slices.Clone(friends), func(f models.Friend) bool { return f.Code == code })
}
