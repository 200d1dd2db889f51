package actorsys

import "context"

// ReactiveActor is the shape almost every actor in this system takes: a
// single callback reacting to one inbound message at a time. Spawn wraps it
// in the standard select loop (receive-or-shutdown) so implementations
// never write that loop themselves.
type ReactiveActor[M any] interface {
	// OnCall handles one message delivered from the mailbox. Implementations
	// dispatch on whichever field of M is populated and must complete any
	// Call embedded in it exactly once, via Reply or ReplyError.
	OnCall(ctx context.Context, msg M)
}

// Options configures a spawned actor. A zero-value Options is valid and
// selects DefaultMailboxSize.
type Options struct {
	// MailboxSize overrides the default mailbox capacity.
	MailboxSize int
}

// Spawn starts behavior's receive loop as a task owned by tm and returns a
// Handle other actors and the HTTP layer use to send it calls. The loop
// exits, closing the mailbox to further sends, when tm's context is
// cancelled.
func Spawn[M any](tm *TaskManager, behavior ReactiveActor[M], opts Options) *Handle[M] {
	mb := newMailbox[M](opts.MailboxSize)
	h := &Handle[M]{mb: mb}

	tm.Go(func(ctx context.Context) error {
		defer mb.closeDone()
		for {
			select {
			case <-ctx.Done():
				return nil
			case msg := <-mb.ch:
				behavior.OnCall(ctx, msg)
			}
		}
	})

	return h
}

// Send builds a Call around input, injects it into the actor's
// call-superset message type via wrap, forwards it through h, and blocks
// for the reply. This is the generic helper underlying every package-level
// Get/Put/Activate function built on top of a Handle[M].
func Send[M any, In any, Out any](ctx context.Context, h *Handle[M], input In, wrap func(*Call[In, Out]) M) (Out, error) {
	call := NewCall[In, Out](input)
	msg := wrap(call)

	var zero Out
	if err := h.Forward(ctx, msg); err != nil {
		return zero, err
	}

	select {
	case res := <-call.reply:
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
