// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/mock"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/internal/validators"
	"github.com/MKhiriev/days-together/models"
)

var chatNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestChatSvc(t *testing.T, codes ...string) (*chatService, *mock.MockKeyValueRepository, *sequenceGenerator) {
	t.Helper()
	if len(codes) == 0 {
		codes = []string{"482913"}
	}
	kv := newMockKV(t)
	ids := &sequenceGenerator{values: []string{"m1", "m2", "m3"}}
	svc := NewChatService(kv, validators.NewInputValidator(), &sequenceGenerator{values: codes}, ids, logger.Nop()).(*chatService)
	svc.now = fixedClock(chatNow)
	return svc, kv, ids
}

// withState seeds identity and friends without going through storage.
func withState(svc *chatService, friends ...models.Friend) {
	svc.identity = models.LocalIdentity{Code: "482913", DisplayName: "Ana"}
	svc.friends = friends
}

func decodeMessages(t *testing.T, raw string) []models.Message {
	t.Helper()
	var messages []models.Message
	require.NoError(t, json.Unmarshal([]byte(raw), &messages))
	return messages
}

// ── identity ─────────────────────────────────────────────────────────────────

func TestChatService_EnsureIdentity_FirstRun(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, store.KeyUserCode).Return("", false, nil)
	kv.EXPECT().Get(ctx, store.KeyUserName).Return("", false, nil)
	kv.EXPECT().SetMany(ctx, map[string]string{
		store.KeyUserCode: "482913",
		store.KeyUserName: models.DefaultDisplayName,
	}).Return(nil)

	identity := svc.EnsureIdentity(ctx)

	assert.Equal(t, models.LocalIdentity{Code: "482913", DisplayName: models.DefaultDisplayName}, identity)
	assert.Equal(t, identity, svc.Identity())
}

func TestChatService_EnsureIdentity_StableAcrossRestarts(t *testing.T) {
	ctx := context.Background()

	// first launch generates and stores 482913
	first, kv1, _ := newTestChatSvc(t, "482913")
	stored := map[string]string{}
	kv1.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil).Times(2)
	kv1.EXPECT().SetMany(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, values map[string]string) error {
		for k, v := range values {
			stored[k] = v
		}
		return nil
	})
	require.Equal(t, "482913", first.EnsureIdentity(ctx).Code)

	// second launch would generate a different code, but must not
	second, kv2, _ := newTestChatSvc(t, "111111")
	kv2.EXPECT().Get(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, key string) (string, bool, error) {
		v, ok := stored[key]
		return v, ok, nil
	}).Times(2)

	assert.Equal(t, "482913", second.EnsureIdentity(ctx).Code)
}

func TestChatService_EnsureIdentity_BlankStoredCodeIsReplaced(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t, "555555")
	ctx := context.Background()

	kv.EXPECT().Get(ctx, store.KeyUserCode).Return("   ", true, nil)
	kv.EXPECT().Get(ctx, store.KeyUserName).Return("Ana", true, nil)
	kv.EXPECT().SetMany(ctx, map[string]string{store.KeyUserCode: "555555"}).Return(nil)

	identity := svc.EnsureIdentity(ctx)

	assert.Equal(t, models.LocalIdentity{Code: "555555", DisplayName: "Ana"}, identity)
}

func TestChatService_EnsureIdentity_ReadErrorStillYieldsIdentity(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, store.ErrStorageRead).Times(2)
	kv.EXPECT().SetMany(gomock.Any(), gomock.Any()).Return(store.ErrStorageWrite)

	identity := svc.EnsureIdentity(context.Background())

	assert.Equal(t, "482913", identity.Code)
	assert.Equal(t, models.DefaultDisplayName, identity.DisplayName)
}

func TestChatService_SetDisplayName(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc)
	ctx := context.Background()

	kv.EXPECT().Set(ctx, store.KeyUserName, "Ana María").Return(nil)

	identity, err := svc.SetDisplayName(ctx, "  Ana María ")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", identity.DisplayName)
	assert.Equal(t, "482913", identity.Code)

	_, err = svc.SetDisplayName(ctx, "   ")
	assert.ErrorIs(t, err, validators.ErrEmptyDisplayName)
	assert.Equal(t, "Ana María", svc.Identity().DisplayName)
}

// ── friends ──────────────────────────────────────────────────────────────────

func TestChatService_LoadFriends(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	kv.EXPECT().Get(gomock.Any(), store.KeyFriends).Return(`[{"code":"111111","name":"Bo"},{"code":"222222","name":"Cy"}]`, true, nil)

	friends := svc.LoadFriends(context.Background())

	assert.Equal(t, []models.Friend{{Code: "111111", Name: "Bo"}, {Code: "222222", Name: "Cy"}}, friends)
}

func TestChatService_AddFriend_Persists(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Set(ctx, store.KeyFriends, `[{"code":"111111","name":"Bo"},{"code":"222222","name":"Cy"}]`).Return(nil)

	friends, err := svc.AddFriend(ctx, " 222222 ", " Cy ")

	require.NoError(t, err)
	assert.Equal(t, []models.Friend{{Code: "111111", Name: "Bo"}, {Code: "222222", Name: "Cy"}}, friends)
}

func TestChatService_AddFriend_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		friend    string
		wantField string
		wantErr   error
	}{
		{name: "empty code", code: "  ", friend: "Bo", wantField: validators.FieldCode, wantErr: validators.ErrEmptyFriendCode},
		{name: "own code", code: "482913", friend: "Me", wantField: validators.FieldCode, wantErr: ErrOwnFriendCode},
		{name: "duplicate code", code: "111111", friend: "Bo again", wantField: validators.FieldCode, wantErr: ErrDuplicateFriend},
		{name: "empty name", code: "333333", friend: " ", wantField: validators.FieldName, wantErr: validators.ErrEmptyFriendName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestChatSvc(t)
			withState(svc, models.Friend{Code: "111111", Name: "Bo"})

			friends, err := svc.AddFriend(context.Background(), tt.code, tt.friend)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "want *ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []models.Friend{{Code: "111111", Name: "Bo"}}, friends)
		})
	}
}

func TestChatService_RemoveFriend_DeselectsSelected(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"}, models.Friend{Code: "222222", Name: "Cy"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, store.MessagesKey("482913", "111111")).Return(`[{"id":"m0","text":"hey"}]`, true, nil)
	kv.EXPECT().Set(ctx, store.KeyFriends, `[{"code":"222222","name":"Cy"}]`).Return(nil)

	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)

	friends := svc.RemoveFriend(ctx, "111111")

	assert.Equal(t, []models.Friend{{Code: "222222", Name: "Cy"}}, friends)
	_, selected := svc.Selected()
	assert.False(t, selected)
	assert.Empty(t, svc.Messages())
}

func TestChatService_RemoveFriend_OtherSelectionKept(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"}, models.Friend{Code: "222222", Name: "Cy"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	kv.EXPECT().Set(ctx, store.KeyFriends, gomock.Any()).Return(nil)

	_, err := svc.Select(ctx, "222222")
	require.NoError(t, err)
	svc.RemoveFriend(ctx, "111111")

	friend, selected := svc.Selected()
	assert.True(t, selected)
	assert.Equal(t, "222222", friend.Code)
}

func TestChatService_RemoveLastFriendPersistsEmptyList(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})

	kv.EXPECT().Set(gomock.Any(), store.KeyFriends, "[]").Return(nil)

	assert.Empty(t, svc.RemoveFriend(context.Background(), "111111"))
}

// ── conversation ─────────────────────────────────────────────────────────────

func TestChatService_Select_UnknownFriend(t *testing.T) {
	svc, _, _ := newTestChatSvc(t)
	withState(svc)

	_, err := svc.Select(context.Background(), "999999")

	assert.ErrorIs(t, err, ErrFriendNotFound)
}

func TestChatService_SelectDeselect(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "messages_482913_111111").
		Return(`[{"id":"m0","text":"hey","senderId":"482913","senderName":"Ana","timestamp":1718445600000}]`, true, nil)

	messages, err := svc.Select(ctx, "111111")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, models.Message{ID: "m0", Text: "hey", SenderCode: "482913", SenderName: "Ana", TimestampMs: 1718445600000}, messages[0])

	friend, ok := svc.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Bo", friend.Name)

	svc.Deselect()
	_, ok = svc.Selected()
	assert.False(t, ok)
	assert.Empty(t, svc.Messages())
}

func TestChatService_Send_AppendsExactlyOne(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "messages_482913_111111").Return(`[{"id":"m0","text":"hey"}]`, true, nil)
	var persisted string
	kv.EXPECT().Set(ctx, "messages_482913_111111", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v string) error {
		persisted = v
		return nil
	})

	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)

	messages := svc.Send(ctx, "  hello there ")

	require.Len(t, messages, 2)
	assert.Equal(t, "m0", messages[0].ID)
	assert.Equal(t, models.Message{
		ID:          "m1",
		Text:        "hello there",
		SenderCode:  "482913",
		SenderName:  "Ana",
		TimestampMs: chatNow.UnixMilli(),
	}, messages[1])
	assert.Equal(t, messages, decodeMessages(t, persisted))
}

func TestChatService_Send_NoOps(t *testing.T) {
	svc, kv, ids := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	// no selection
	assert.Empty(t, svc.Send(ctx, "hello"))

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)

	// blank text
	assert.Empty(t, svc.Send(ctx, "  \n\t "))
	assert.Zero(t, ids.calls)
}

func TestChatService_Send_OrderPreserved(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	kv.EXPECT().Set(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)
	svc.Send(ctx, "one")
	svc.Send(ctx, "two")
	messages := svc.Send(ctx, "three")

	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"one", "two", "three"}, texts)
}

func TestChatService_Send_WriteErrorKeepsMessage(t *testing.T) {
	svc, kv, _ := newTestChatSvc(t)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	kv.EXPECT().Set(ctx, gomock.Any(), gomock.Any()).Return(store.ErrStorageWrite)

	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)

	assert.Len(t, svc.Send(ctx, "hello"), 1)
	assert.Len(t, svc.Messages(), 1)
}

func TestChatService_Send_EmptyIDDropsMessage(t *testing.T) {
	kv := newMockKV(t)
	svc := NewChatService(kv, validators.NewInputValidator(), &sequenceGenerator{values: []string{"482913"}},
		&sequenceGenerator{values: []string{""}}, logger.Nop()).(*chatService)
	withState(svc, models.Friend{Code: "111111", Name: "Bo"})
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Select(ctx, "111111")
	require.NoError(t, err)

	assert.Empty(t, svc.Send(ctx, "hello"))
	assert.Empty(t, svc.Messages())
}
