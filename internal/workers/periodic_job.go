package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/days-together/internal/logger"
)

// DefaultInterval is used when Start is called with a non-positive interval.
const DefaultInterval = time.Minute

// PeriodicJob calls a function once immediately and then on every tick.
type PeriodicJob struct {
	name   string
	fn     func(ctx context.Context)
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob creates a job that runs fn. The job is idle until Start is called.
func NewPeriodicJob(name string, fn func(ctx context.Context), log *logger.Logger) *PeriodicJob {
	return &PeriodicJob{
		name:   name,
		fn:     fn,
		logger: log,
	}
}

// Start stops any previously running instance, then runs fn once and every
// interval until ctx is cancelled or Stop is called.
func (j *PeriodicJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("func", "PeriodicJob.Start").Str("job", j.name).Dur("interval", interval).Msg("job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.fn(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.fn(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Debug().Str("func", "PeriodicJob.Stop").Str("job", j.name).Msg("job stopped")
	}
	j.wg.Wait()
}
