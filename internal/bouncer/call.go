// Package bouncer implements the gate actor every data-plane call passes
// through: it rejects storage and coordinator calls until the node has
// activated itself with the run id this process generated at startup.
package bouncer

import (
	"context"

	"github.com/spalhad/kvstore/internal/actorsys"
	"github.com/spalhad/kvstore/internal/coordinator"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/storage"
)

// ActivateInput is the request payload for an Activate call.
type ActivateInput struct {
	RunID key.RunId
}

// ActivateOutput is the reply payload for a successful Activate call.
type ActivateOutput struct{}

// IsActiveOutput is the reply payload for an IsActive call.
type IsActiveOutput struct {
	Active bool
}

// Call is the superset message type the bouncer's mailbox carries: its own
// Activate/IsActive variants, plus every storage and coordinator call
// variant, injected unchanged so the bouncer can forward them without
// re-wrapping the caller's pending reply.
type Call struct {
	Activate    *actorsys.Call[ActivateInput, ActivateOutput]
	IsActive    *actorsys.Call[struct{}, IsActiveOutput]
	Storage     *storage.Call
	Coordinator *coordinator.Call
}

// Handle is a reference to a running bouncer actor.
type Handle = actorsys.Handle[Call]

// Activate sends an Activate call to h and waits for the reply.
func Activate(ctx context.Context, h *Handle, runID key.RunId) error {
	_, err := actorsys.Send(ctx, h, ActivateInput{RunID: runID}, func(c *actorsys.Call[ActivateInput, ActivateOutput]) Call {
		return Call{Activate: c}
	})
	return err
}

// IsActive sends an IsActive call to h and waits for the reply.
func IsActive(ctx context.Context, h *Handle) (bool, error) {
	out, err := actorsys.Send(ctx, h, struct{}{}, func(c *actorsys.Call[struct{}, IsActiveOutput]) Call {
		return Call{IsActive: c}
	})
	if err != nil {
		return false, err
	}
	return out.Active, nil
}

// Get sends a Get call through the bouncer to the public coordinator path.
func Get(ctx context.Context, h *Handle, k key.Key) ([]byte, bool, error) {
	out, err := actorsys.Send(ctx, h, coordinator.GetInput{Key: k}, func(c *actorsys.Call[coordinator.GetInput, coordinator.GetOutput]) Call {
		return Call{Coordinator: &coordinator.Call{Get: c}}
	})
	if err != nil {
		return nil, false, err
	}
	return out.Value, out.Found, nil
}

// Put sends a Put call through the bouncer to the public coordinator path.
func Put(ctx context.Context, h *Handle, k key.Key, value []byte) (bool, error) {
	out, err := actorsys.Send(ctx, h, coordinator.PutInput{Key: k, Value: value}, func(c *actorsys.Call[coordinator.PutInput, coordinator.PutOutput]) Call {
		return Call{Coordinator: &coordinator.Call{Put: c}}
	})
	if err != nil {
		return false, err
	}
	return out.New, nil
}

// GetLocal sends a Get call through the bouncer to the local storage path,
// used by the internal-kv routes a peer's ClientStorage talks to.
func GetLocal(ctx context.Context, h *Handle, k key.Key) ([]byte, bool, error) {
	out, err := actorsys.Send(ctx, h, storage.GetInput{Key: k}, func(c *actorsys.Call[storage.GetInput, storage.GetOutput]) Call {
		return Call{Storage: &storage.Call{Get: c}}
	})
	if err != nil {
		return nil, false, err
	}
	return out.Value, out.Found, nil
}

// PutLocal sends a Put call through the bouncer to the local storage path.
func PutLocal(ctx context.Context, h *Handle, k key.Key, value []byte) (bool, error) {
	out, err := actorsys.Send(ctx, h, storage.PutInput{Key: k, Value: value}, func(c *actorsys.Call[storage.PutInput, storage.PutOutput]) Call {
		return Call{Storage: &storage.Call{Put: c}}
	})
	if err != nil {
		return false, err
	}
	return out.New, nil
}
