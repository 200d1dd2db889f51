// Package storage implements the three interchangeable backends behind the
// shared {Get, Put} call set: an in-memory map, one-file-per-key JSON on
// disk, and an HTTP adapter to a peer's internal-kv routes.
package storage

import (
	"context"
	"encoding/json"

	"github.com/spalhad/kvstore/internal/actorsys"
	"github.com/spalhad/kvstore/internal/key"
)

// GetInput is the request payload for a Get call.
type GetInput struct {
	Key key.Key
}

// GetOutput is the reply payload for a Get call.
type GetOutput struct {
	Value json.RawMessage
	Found bool
}

// PutInput is the request payload for a Put call.
type PutInput struct {
	Key   key.Key
	Value json.RawMessage
}

// PutOutput is the reply payload for a Put call. New reports whether the
// key was absent before this write.
type PutOutput struct {
	New bool
}

// Call is the superset message type every storage backend's mailbox
// carries: exactly one field is populated per message, the Go analogue of
// a tagged union over {Get, Put}.
type Call struct {
	Get *actorsys.Call[GetInput, GetOutput]
	Put *actorsys.Call[PutInput, PutOutput]
}

// ReplyError completes whichever call c carries with err. Used by the
// bouncer to reject a storage call without forwarding it when the node is
// not active.
func (c Call) ReplyError(err error) {
	switch {
	case c.Get != nil:
		c.Get.ReplyError(err)
	case c.Put != nil:
		c.Put.ReplyError(err)
	}
}

// Handle is a reference to a running storage backend actor.
type Handle = actorsys.Handle[Call]

// Get sends a Get call to h and waits for the reply.
func Get(ctx context.Context, h *Handle, k key.Key) (json.RawMessage, bool, error) {
	out, err := actorsys.Send(ctx, h, GetInput{Key: k}, func(c *actorsys.Call[GetInput, GetOutput]) Call {
		return Call{Get: c}
	})
	if err != nil {
		return nil, false, err
	}
	return out.Value, out.Found, nil
}

// Put sends a Put call to h and waits for the reply.
func Put(ctx context.Context, h *Handle, k key.Key, value json.RawMessage) (bool, error) {
	out, err := actorsys.Send(ctx, h, PutInput{Key: k, Value: value}, func(c *actorsys.Call[PutInput, PutOutput]) Call {
		return Call{Put: c}
	})
	if err != nil {
		return false, err
	}
	return out.New, nil
}
