package actorsys

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAllSucceedsWhenNoTaskFails(t *testing.T) {
	tm := NewTaskManager()

	done := make(chan struct{})
	tm.Go(func(ctx context.Context) error {
		close(done)
		return nil
	})

	<-done
	tm.Cancel()
	require.NoError(t, tm.WaitAll())
}

func TestWaitAllReportsFailure(t *testing.T) {
	tm := NewTaskManager()

	tm.Go(func(ctx context.Context) error {
		return fmt.Errorf("boom")
	})

	assert.Error(t, tm.WaitAll())
}

func TestCancelStopsTasksObservingContext(t *testing.T) {
	tm := NewTaskManager()

	stopped := make(chan struct{})
	tm.Go(func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return nil
	})

	tm.Cancel()
	require.NoError(t, tm.WaitAll())

	select {
	case <-stopped:
	default:
		t.Fatal("expected task to observe cancellation")
	}
}
