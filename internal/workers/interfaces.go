// Package workers provides the background jobs of the client. The only
// recurring activity is the elapsed-time refresh; a Workers aggregate lets the
// app stop every job it started on shutdown.
package workers

import (
	"context"
	"time"
)

// Worker is a background job that can be started and stopped.
//
// Start launches the job and returns immediately. Stop cancels it and blocks
// until its goroutine has exited. Stop must be safe to call when the job was
// never started and when it is called more than once.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
