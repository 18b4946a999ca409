package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/store"
	"github.com/MKhiriev/days-together/models"
)

// StartDateLayout is the persisted form of the start date: UTC with
// millisecond precision.
const StartDateLayout = "2006-01-02T15:04:05.000Z"

type profileService struct {
	kv     store.KeyValueRepository
	logger *logger.Logger
	now    func() time.Time

	writeMu     sync.Mutex
	mu          sync.RWMutex
	profile     models.RelationshipProfile
	subscribers []func(models.RelationshipProfile)
}

func NewProfileService(kv store.KeyValueRepository, log *logger.Logger) ProfileService {
	now := time.Now
	return &profileService{
		kv:      kv,
		logger:  log.WithComponent("profile"),
		now:     now,
		profile: models.DefaultProfile(now()),
	}
}

func (p *profileService) Load(ctx context.Context) models.RelationshipProfile {
	profile := models.DefaultProfile(p.now())

	if v, ok := p.get(ctx, store.KeyName1); ok {
		profile.PartnerNameA = v
	}
	if v, ok := p.get(ctx, store.KeyName2); ok {
		profile.PartnerNameB = v
	}

	startFound := false
	if v, ok := p.get(ctx, store.KeyStartDate); ok {
		start, err := ParseStartDate(v)
		if err != nil {
			p.logger.Warn().Err(err).Str("func", "profileService.Load").Str("value", v).Msg("stored start date is malformed, using now")
		} else {
			profile.StartDateTime = start
			startFound = true
		}
	}

	p.writeMu.Lock()
	p.mu.Lock()
	p.profile = profile
	p.mu.Unlock()

	// keep the first-run start stable across restarts
	if !startFound {
		p.persist(ctx, profile)
	}
	p.writeMu.Unlock()

	p.notify(profile)
	return profile
}

func (p *profileService) Profile() models.RelationshipProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.profile
}

func (p *profileService) SetNames(ctx context.Context, nameA, nameB string) models.RelationshipProfile {
	return p.update(ctx, func(profile *models.RelationshipProfile) {
		profile.PartnerNameA = nameA
		profile.PartnerNameB = nameB
	})
}

func (p *profileService) SetStartDate(ctx context.Context, start time.Time) (models.RelationshipProfile, error) {
	if start.After(p.now()) {
		return p.Profile(), newValidationError("start_date", ErrFutureStartDate)
	}

	return p.update(ctx, func(profile *models.RelationshipProfile) {
		profile.StartDateTime = start
	}), nil
}

func (p *profileService) Reset(ctx context.Context) models.RelationshipProfile {
	now := p.now()
	return p.update(ctx, func(profile *models.RelationshipProfile) {
		*profile = models.DefaultProfile(now)
	})
}

func (p *profileService) Subscribe(fn func(models.RelationshipProfile)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

// update holds writeMu across the swap and the storage write so concurrent
// updates reach storage in the order they were applied.
func (p *profileService) update(ctx context.Context, mutate func(*models.RelationshipProfile)) models.RelationshipProfile {
	p.writeMu.Lock()
	p.mu.Lock()
	profile := p.profile
	mutate(&profile)
	p.profile = profile
	p.mu.Unlock()

	p.persist(ctx, profile)
	p.writeMu.Unlock()

	p.notify(profile)
	return profile
}

func (p *profileService) persist(ctx context.Context, profile models.RelationshipProfile) {
	err := p.kv.SetMany(ctx, map[string]string{
		store.KeyName1:     profile.PartnerNameA,
		store.KeyName2:     profile.PartnerNameB,
		store.KeyStartDate: FormatStartDate(profile.StartDateTime),
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "profileService.persist").Msg("failed to persist profile")
	}
}

func (p *profileService) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := p.kv.Get(ctx, key)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "profileService.get").Str("key", key).Msg("failed to read profile value")
		return "", false
	}
	return v, ok
}

func (p *profileService) notify(profile models.RelationshipProfile) {
	p.mu.RLock()
	subscribers := append([]func(models.RelationshipProfile){}, p.subscribers...)
	p.mu.RUnlock()

	for _, fn := range subscribers {
		fn(profile)
	}
}

// FormatStartDate renders t as UTC ISO-8601 with milliseconds.
func FormatStartDate(t time.Time) string {
	return t.UTC().Format(StartDateLayout)
}

// ParseStartDate accepts any RFC 3339 instant, which covers StartDateLayout.
func ParseStartDate(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, v)
}
