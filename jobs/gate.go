// Package jobs bounds the number of concurrently running transforms and
// tracks one cancellable job per user.
package jobs

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrCancelled is the cancellation cause of a job stopped through Cancel.
// It is a distinct outcome, not a processing failure.
var ErrCancelled = errors.New("job cancelled by user")

// DefaultLimit is the number of heavy transforms allowed in flight at once.
const DefaultLimit = 2

type job struct {
	cancel context.CancelCauseFunc
}

// Gate admits at most a fixed number of jobs concurrently. Admission
// suspends on the semaphore; it does not busy-wait.
type Gate struct {
	sem *semaphore.Weighted

	mu      sync.Mutex
	running map[string]*job
}

func NewGate(limit int64) *Gate {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Gate{
		sem:     semaphore.NewWeighted(limit),
		running: make(map[string]*job),
	}
}

// Begin blocks until a slot is free, then returns the job's context and a
// done function releasing the slot. The context is cancelled with cause
// ErrCancelled when Cancel is called for the same user. done must be called
// exactly once, whether the job succeeds, fails, or is cancelled.
//
// Only one job per user is tracked: a second Begin for the same user
// replaces the tracked handle, leaving the first job running but no longer
// cancellable.
func (g *Gate) Begin(ctx context.Context, user string) (context.Context, func(), error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}

	jobCtx, cancel := context.WithCancelCause(ctx)
	j := &job{cancel: cancel}

	g.mu.Lock()
	g.running[user] = j
	g.mu.Unlock()

	done := sync.OnceFunc(func() {
		g.mu.Lock()
		if g.running[user] == j {
			delete(g.running, user)
		}
		g.mu.Unlock()

		cancel(nil)
		g.sem.Release(1)
	})

	return jobCtx, done, nil
}

// Cancel requests cooperative cancellation of the user's tracked job and
// reports whether one was running. The job observes the request at its next
// checkpoint.
func (g *Gate) Cancel(user string) bool {
	g.mu.Lock()
	j, ok := g.running[user]
	g.mu.Unlock()

	if ok {
		j.cancel(ErrCancelled)
	}
	return ok
}

// InFlight reports the number of tracked jobs.
func (g *Gate) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.running)
}

// IsCancelled distinguishes a user cancellation from a genuine failure.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
