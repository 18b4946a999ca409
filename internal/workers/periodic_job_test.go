package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/days-together/internal/logger"
)

type counter struct {
	calls atomic.Int64
}

func (c *counter) tick(context.Context) {
	c.calls.Add(1)
}

func TestPeriodicJob_RunsImmediately(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), c.calls.Load())
}

func TestPeriodicJob_Ticks(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())

	// 10ms interval: several ticks within 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, c.calls.Load(), int64(3))
}

func TestPeriodicJob_StopStopsGoroutine(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := c.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, c.calls.Load(), "no calls after Stop")
}

func TestPeriodicJob_StopBeforeStartAndTwice(t *testing.T) {
	job := NewPeriodicJob("test", (&counter{}).tick, logger.Nop())

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestPeriodicJob_RestartReplacesRunningInstance(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return c.calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	assert.Equal(t, int64(2), c.calls.Load())
}

func TestPeriodicJob_ContextCancelStops(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestPeriodicJob_NonPositiveIntervalUsesDefault(t *testing.T) {
	c := &counter{}
	job := NewPeriodicJob("test", c.tick, logger.Nop())

	job.Start(context.Background(), 0)
	require.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

var _ Worker = (*PeriodicJob)(nil)
