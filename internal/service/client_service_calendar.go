package service

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/internal/validators"
	"github.com/MKhiriev/days-together/models"
)

type calendarService struct {
	kv        store.KeyValueRepository
	validator validators.Validator
	zone      *time.Location
	now       func() time.Time
	logger    *logger.Logger

	// writeMu orders whole-collection writes so storage sees them in the
	// same order as memory.
	writeMu sync.Mutex
	mu      sync.RWMutex
	notes   models.DayNotes
}

func NewCalendarService(kv store.KeyValueRepository, validator validators.Validator, zone *time.Location, log *logger.Logger) CalendarService {
	return &calendarService{
		kv:        kv,
		validator: validator,
		zone:      zone,
		now:       time.Now,
		logger:    log.WithComponent("calendar"),
		notes:     models.DayNotes{},
	}
}

func (c *calendarService) Load(ctx context.Context) models.DayNotes {
	notes := models.DayNotes{}

	raw, ok, err := c.kv.Get(ctx, store.KeyCalendarNotes)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("func", "calendarService.Load").Msg("failed to read notes")
	case ok:
		if err := json.Unmarshal([]byte(raw), &notes); err != nil {
			c.logger.Warn().Err(err).Str("func", "calendarService.Load").Msg("stored notes are malformed, starting empty")
			notes = models.DayNotes{}
		}
	}

	for key, note := range notes {
		note.DateKey = key
		notes[key] = note
	}

	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()

	return maps.Clone(notes)
}

func (c *calendarService) Notes() models.DayNotes {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.notes)
}

func (c *calendarService) Note(dateKey string) (models.DayNote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	note, ok := c.notes[dateKey]
	return note, ok
}

func (c *calendarService) Grid(year int, month time.Month) iter.Seq[models.DayCell] {
	notes := c.Notes()
	today := DateKeyOf(c.now(), c.zone)

	return func(yield func(models.DayCell) bool) {
		for cell := range MonthGrid(year, month) {
			if !cell.Blank {
				cell.IsToday = cell.DateKey == today
				if note, ok := notes[cell.DateKey]; ok {
					cell.Note = &note
				}
			}
			if !yield(cell) {
				return
			}
		}
	}
}

func (c *calendarService) Upsert(ctx context.Context, dateKey, note, emoji string) (models.DayNotes, error) {
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	entry := models.DayNote{DateKey: dateKey, Note: note, Emoji: emoji}
	if err := c.validator.Validate(ctx, entry); err != nil {
		field := validators.FieldEmoji
		if errors.Is(err, validators.ErrInvalidDateKey) {
			field = validators.FieldDateKey
		}
		return c.Notes(), newValidationError(field, err)
	}

	if strings.TrimSpace(note) == "" && emoji == models.DefaultEmoji {
		return c.Delete(ctx, dateKey), nil
	}

	return c.replace(ctx, func(notes models.DayNotes) models.DayNotes {
		return withNote(notes, entry)
	}), nil
}

func (c *calendarService) Delete(ctx context.Context, dateKey string) models.DayNotes {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if _, ok := c.Note(dateKey); !ok {
		return c.Notes()
	}

	return c.swap(ctx, func(notes models.DayNotes) models.DayNotes {
		return withoutNote(notes, dateKey)
	})
}

// replace swaps in the collection built by next and persists it whole.
func (c *calendarService) replace(ctx context.Context, next func(models.DayNotes) models.DayNotes) models.DayNotes {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.swap(ctx, next)
}

// swap must be called with writeMu held.
func (c *calendarService) swap(ctx context.Context, next func(models.DayNotes) models.DayNotes) models.DayNotes {
	c.mu.Lock()
	notes := next(c.notes)
	c.notes = notes
	c.mu.Unlock()

	c.persist(ctx, notes)
	return maps.Clone(notes)
}

func (c *calendarService) persist(ctx context.Context, notes models.DayNotes) {
	data, err := json.Marshal(notes)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "calendarService.persist").Msg("failed to encode notes")
		return
	}

	if err := c.kv.Set(ctx, store.KeyCalendarNotes, string(data)); err != nil {
		c.logger.Warn().Err(err).Str("func", "calendarService.persist").Msg("failed to persist notes")
	}
}

func withNote(notes models.DayNotes, note models.DayNote) models.DayNotes {
	next := maps.Clone(notes)
	if next == nil {
		next = models.DayNotes{}
	}
	next[note.DateKey] = note
	return next
}

func withoutNote(notes models.DayNotes, dateKey string) models.DayNotes {
	next := maps.Clone(notes)
	if next == nil {
		next = models.DayNotes{}
	}
	delete(next, dateKey)
	return next
}
