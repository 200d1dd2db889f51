package actorsys

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoCall is a minimal single-variant call-superset used to exercise Spawn
// and Send without pulling in a real domain package.
type echoCall struct {
	Echo *Call[int, int]
}

type echoBehavior struct {
	order *[]int
}

func (b *echoBehavior) OnCall(_ context.Context, msg echoCall) {
	if msg.Echo != nil {
		msg.Echo.Handle(func(in int) (int, error) {
			*b.order = append(*b.order, in)
			return in * 2, nil
		})
	}
}

func sendEcho(ctx context.Context, h *Handle[echoCall], in int) (int, error) {
	return Send(ctx, h, in, func(c *Call[int, int]) echoCall {
		return echoCall{Echo: c}
	})
}

func TestSpawnAndSendRoundTrip(t *testing.T) {
	tm := NewTaskManager()
	defer tm.Cancel()

	var order []int
	h := Spawn[echoCall](tm, &echoBehavior{order: &order}, Options{})

	out, err := sendEcho(context.Background(), h, 21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestMailboxPreservesFIFOOrder(t *testing.T) {
	tm := NewTaskManager()
	defer tm.Cancel()

	var order []int
	h := Spawn[echoCall](tm, &echoBehavior{order: &order}, Options{})

	for i := 0; i < 5; i++ {
		_, err := sendEcho(context.Background(), h, i)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestSendFailsAfterActorStopped(t *testing.T) {
	tm := NewTaskManager()
	var order []int
	h := Spawn[echoCall](tm, &echoBehavior{order: &order}, Options{})

	tm.Cancel()
	require.NoError(t, tm.WaitAll())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := sendEcho(ctx, h, 1)
	assert.Error(t, err)
}
