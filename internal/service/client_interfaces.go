package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/days-together/models"
)

// ProfileService owns the couple's names and start date. Storage failures
// are logged and the in-memory profile stays authoritative.
type ProfileService interface {
	// Load reads the persisted profile. On first run the start is set to now
	// and persisted.
	Load(ctx context.Context) models.RelationshipProfile
	Profile() models.RelationshipProfile
	SetNames(ctx context.Context, nameA, nameB string) models.RelationshipProfile
	// SetStartDate rejects instants in the future with a *ValidationError.
	SetStartDate(ctx context.Context, start time.Time) (models.RelationshipProfile, error)
	// Reset clears both names and sets the start to now.
	Reset(ctx context.Context) models.RelationshipProfile
	// Subscribe registers fn to be called after every change.
	Subscribe(fn func(models.RelationshipProfile))
}

// ElapsedTracker recomputes the time together in the background.
type ElapsedTracker interface {
	// Start recomputes once immediately and then every interval, passing each
	// value to onTick. A running tracker is restarted.
	Start(ctx context.Context, interval time.Duration, onTick func(models.Elapsed))
	// Refresh recomputes once outside the schedule.
	Refresh()
	Current() models.Elapsed
	// Stop blocks until the background goroutine has exited.
	Stop()
}

// CalendarService stores one note per day.
type CalendarService interface {
	Load(ctx context.Context) models.DayNotes
	Notes() models.DayNotes
	Note(dateKey string) (models.DayNote, bool)
	// Grid decorates the month grid with stored notes and today's flag.
	Grid(year int, month time.Month) iter.Seq[models.DayCell]
	// Upsert removes the entry when note is blank and emoji is the default.
	Upsert(ctx context.Context, dateKey, note, emoji string) (models.DayNotes, error)
	// Delete is idempotent.
	Delete(ctx context.Context, dateKey string) models.DayNotes
}

// ChatService is the local-only friend and message store.
type ChatService interface {
	// EnsureIdentity loads the identity, generating it on first run only.
	EnsureIdentity(ctx context.Context) models.LocalIdentity
	Identity() models.LocalIdentity
	SetDisplayName(ctx context.Context, name string) (models.LocalIdentity, error)

	LoadFriends(ctx context.Context) []models.Friend
	Friends() []models.Friend
	AddFriend(ctx context.Context, code, name string) ([]models.Friend, error)
	RemoveFriend(ctx context.Context, code string) []models.Friend

	// Select loads the log of the pair (identity, friend).
	Select(ctx context.Context, code string) ([]models.Message, error)
	// Deselect drops the in-memory log only.
	Deselect()
	Selected() (models.Friend, bool)
	Messages() []models.Message
	// Send is a no-op on blank text or when no friend is selected.
	Send(ctx context.Context, text string) []models.Message
}

// Preferences holds the UI language.
type Preferences interface {
	// Load prefers the forced value, then the saved value, then the device locale.
	Load(ctx context.Context) models.Language
	Language() models.Language
	Set(ctx context.Context, lang models.Language) error
	Subscribe(fn func(models.Language))
	// Save persists the current language.
	Save(ctx context.Context) error
}

// GameCatalog lists the static couple games.
type GameCatalog interface {
	Games() []models.Game
}

// ExportService writes a snapshot of all stored data and returns its path.
type ExportService interface {
	Export(ctx context.Context) (string, error)
}

// AppInfoService reports the application build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Generator produces identifiers.
type Generator interface {
	Generate() string
}
