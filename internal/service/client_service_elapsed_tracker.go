package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/days-together/internal/logger"
	"github.com/MKhiriev/days-together/internal/workers"
	"github.com/MKhiriev/days-together/models"
)

type elapsedTracker struct {
	profile ProfileService
	zone    *time.Location
	now     func() time.Time
	job     *workers.PeriodicJob
	logger  *logger.Logger

	mu      sync.Mutex
	onTick  func(models.Elapsed)
	current models.Elapsed
}

// NewElapsedTracker creates a tracker reading the start from profile. It
// refreshes on every profile change.
func NewElapsedTracker(profile ProfileService, zone *time.Location, log *logger.Logger) ElapsedTracker {
	return newElapsedTracker(profile, zone, log)
}

func newElapsedTracker(profile ProfileService, zone *time.Location, log *logger.Logger) *elapsedTracker {
	t := &elapsedTracker{
		profile: profile,
		zone:    zone,
		now:     time.Now,
		logger:  log.WithComponent("elapsed"),
	}
	t.job = workers.NewPeriodicJob("elapsed", func(context.Context) { t.Refresh() }, t.logger)

	profile.Subscribe(func(models.RelationshipProfile) { t.Refresh() })

	return t
}

// Worker exposes the background job so it can be registered for shutdown.
func (t *elapsedTracker) Worker() workers.Worker {
	return t.job
}

func (t *elapsedTracker) Start(ctx context.Context, interval time.Duration, onTick func(models.Elapsed)) {
	t.mu.Lock()
	t.onTick = onTick
	t.mu.Unlock()

	t.job.Start(ctx, interval)
}

func (t *elapsedTracker) Refresh() {
	e := ComputeElapsed(t.profile.Profile().StartDateTime, t.now(), t.zone)

	t.mu.Lock()
	t.current = e
	onTick := t.onTick
	t.mu.Unlock()

	if onTick != nil {
		onTick(e)
	}
}

func (t *elapsedTracker) Current() models.Elapsed {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *elapsedTracker) Stop() {
	t.job.Stop()

	t.mu.Lock()
	t.onTick = nil
	t.mu.Unlock()
}
