package actorsys

// Call is a single request/response exchange delivered through an actor's
// mailbox: In is the request payload, Out the reply payload. The sender
// blocks on reply (buffered, capacity 1) until the actor handling it calls
// Reply or ReplyError exactly once.
type Call[In, Out any] struct {
	Input In
	reply chan callResult[Out]
}

type callResult[Out any] struct {
	value Out
	err   error
}

// NewCall builds a Call ready to be embedded into a call-superset message
// and forwarded to an actor's mailbox.
func NewCall[In, Out any](input In) *Call[In, Out] {
	return &Call[In, Out]{Input: input, reply: make(chan callResult[Out], 1)}
}

// Reply completes the call successfully. Must be called at most once.
func (c *Call[In, Out]) Reply(out Out) {
	c.reply <- callResult[Out]{value: out}
}

// ReplyError completes the call with a failure. Must be called at most once.
func (c *Call[In, Out]) ReplyError(err error) {
	c.reply <- callResult[Out]{err: err}
}

// Handle implements handler(c.Input) and completes c with the result. It is
// the usual way a ReactiveActor's OnCall method dispatches a single call
// variant.
func (c *Call[In, Out]) Handle(handler func(In) (Out, error)) {
	out, err := handler(c.Input)
	if err != nil {
		c.ReplyError(err)
		return
	}
	c.Reply(out)
}
