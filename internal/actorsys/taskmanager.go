package actorsys

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/spalhad/kvstore/internal/kverrors"
)

// TaskManager owns the process-wide cancellation token and tracks every
// background task spawned through it: Cancel is the one knob that tells
// every actor and background loop to shut down, and WaitAll blocks until
// they all have, surfacing whether any of them failed.
type TaskManager struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu     sync.Mutex
	failed bool
}

// NewTaskManager returns a TaskManager with a fresh cancellation context.
func NewTaskManager() *TaskManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskManager{ctx: ctx, cancel: cancel, group: &errgroup.Group{}}
}

// Context returns the cancellation context every spawned task (and every
// Spawn'd actor) observes.
func (tm *TaskManager) Context() context.Context {
	return tm.ctx
}

// Cancel signals every task and actor owned by tm to shut down. Idempotent.
func (tm *TaskManager) Cancel() {
	tm.cancel()
}

// Go runs task in its own goroutine, tracked until WaitAll. task receives
// tm's cancellation context and should return promptly once it observes
// ctx.Done(). A returned error marks the manager as having a failed task
// and is logged with its full cause chain; it does not cancel sibling
// tasks.
func (tm *TaskManager) Go(task func(ctx context.Context) error) {
	tm.group.Go(func() error {
		err := task(tm.ctx)
		if err != nil {
			tm.mu.Lock()
			tm.failed = true
			tm.mu.Unlock()

			logger := log.With().Logger()
			logger.Error().Msg("task failed")
			for _, line := range kverrors.Trace(err) {
				logger.Error().Str("cause", line).Msg("caused by")
			}
		}
		return nil
	})
}

// WaitAll blocks until every task spawned via Go has returned, then reports
// whether any of them failed.
func (tm *TaskManager) WaitAll() error {
	_ = tm.group.Wait()

	tm.mu.Lock()
	failed := tm.failed
	tm.mu.Unlock()

	if failed {
		return fmt.Errorf("one or more tasks failed")
	}
	return nil
}
