package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/mock"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/models"
)

var profileNow = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

func newTestProfileSvc(t *testing.T) (*profileService, *mock.MockKeyValueRepository) {
	t.Helper()
	kv := newMockKV(t)
	svc := NewProfileService(kv, logger.Nop()).(*profileService)
	svc.now = fixedClock(profileNow)
	return svc, kv
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestProfileService_Load_StoredValues(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, store.KeyName1).Return("Ana", true, nil)
	kv.EXPECT().Get(ctx, store.KeyName2).Return("Luis", true, nil)
	kv.EXPECT().Get(ctx, store.KeyStartDate).Return("2024-01-01T06:00:00.000Z", true, nil)

	got := svc.Load(ctx)

	assert.Equal(t, "Ana", got.PartnerNameA)
	assert.Equal(t, "Luis", got.PartnerNameB)
	assert.True(t, got.StartDateTime.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, cst)))
	assert.Equal(t, got, svc.Profile())
}

func TestProfileService_Load_FirstRunPersistsNow(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil).Times(3)
	kv.EXPECT().SetMany(ctx, map[string]string{
		store.KeyName1:     "",
		store.KeyName2:     "",
		store.KeyStartDate: "2024-06-15T18:30:00.000Z",
	}).Return(nil)

	got := svc.Load(ctx)

	assert.Empty(t, got.PartnerNameA)
	assert.True(t, got.StartDateTime.Equal(profileNow))
}

func TestProfileService_Load_MalformedStartDate(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, store.KeyName1).Return("Ana", true, nil)
	kv.EXPECT().Get(ctx, store.KeyName2).Return("", false, nil)
	kv.EXPECT().Get(ctx, store.KeyStartDate).Return("yesterday", true, nil)
	kv.EXPECT().SetMany(ctx, gomock.Any()).Return(nil)

	got := svc.Load(ctx)

	assert.Equal(t, "Ana", got.PartnerNameA)
	assert.True(t, got.StartDateTime.Equal(profileNow))
}

func TestProfileService_Load_ReadErrorFallsBackToDefaults(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, gomock.Any()).Return("", false, store.ErrStorageRead).Times(3)
	kv.EXPECT().SetMany(ctx, gomock.Any()).Return(store.ErrStorageWrite)

	got := svc.Load(ctx)

	assert.Equal(t, models.DefaultProfile(profileNow), got)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestProfileService_SetNames_PersistsAllKeys(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()
	svc.profile.StartDateTime = time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	kv.EXPECT().SetMany(ctx, map[string]string{
		store.KeyName1:     "Ana",
		store.KeyName2:     "Luis",
		store.KeyStartDate: "2024-01-01T06:00:00.000Z",
	}).Return(nil)

	got := svc.SetNames(ctx, "Ana", "Luis")

	assert.Equal(t, "Ana", got.PartnerNameA)
	assert.Equal(t, "Luis", got.PartnerNameB)
}

func TestProfileService_SetNames_WriteErrorKeepsMemoryState(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()

	kv.EXPECT().SetMany(ctx, gomock.Any()).Return(store.ErrStorageWrite)

	got := svc.SetNames(ctx, "Ana", "Luis")

	assert.Equal(t, "Ana", got.PartnerNameA)
	assert.Equal(t, "Ana", svc.Profile().PartnerNameA)
}

func TestProfileService_SetStartDate(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, cst)

	kv.EXPECT().SetMany(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, values map[string]string) error {
		assert.Equal(t, "2024-01-01T06:00:00.000Z", values[store.KeyStartDate])
		return nil
	})

	got, err := svc.SetStartDate(ctx, start)

	require.NoError(t, err)
	assert.True(t, got.StartDateTime.Equal(start))
}

func TestProfileService_SetStartDate_FutureRejected(t *testing.T) {
	svc, _ := newTestProfileSvc(t)
	before := svc.Profile()

	got, err := svc.SetStartDate(context.Background(), profileNow.Add(time.Hour))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "start_date", vErr.Field)
	assert.ErrorIs(t, err, ErrFutureStartDate)
	assert.Equal(t, before, got)
}

func TestProfileService_Reset(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()
	svc.profile = models.RelationshipProfile{
		PartnerNameA:  "Ana",
		PartnerNameB:  "Luis",
		StartDateTime: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	kv.EXPECT().SetMany(ctx, map[string]string{
		store.KeyName1:     "",
		store.KeyName2:     "",
		store.KeyStartDate: "2024-06-15T18:30:00.000Z",
	}).Return(nil)

	got := svc.Reset(ctx)

	assert.Equal(t, models.DefaultProfile(profileNow), got)
}

func TestProfileService_SubscribeNotifiedOnChange(t *testing.T) {
	svc, kv := newTestProfileSvc(t)
	ctx := context.Background()
	kv.EXPECT().SetMany(ctx, gomock.Any()).Return(nil).Times(2)

	var seen []string
	svc.Subscribe(func(p models.RelationshipProfile) { seen = append(seen, p.PartnerNameA) })

	svc.SetNames(ctx, "Ana", "")
	svc.SetNames(ctx, "Bea", "")

	assert.Equal(t, []string{"Ana", "Bea"}, seen)
}

// ── formatting ───────────────────────────────────────────────────────────────

func TestFormatAndParseStartDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 123_456_789, cst)

	formatted := FormatStartDate(start)
	assert.Equal(t, "2024-01-01T06:00:00.123Z", formatted)

	parsed, err := ParseStartDate(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(start.Truncate(time.Millisecond)))

	_, err = ParseStartDate("2024-01-01")
	assert.Error(t, err)
}
