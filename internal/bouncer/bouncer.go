package bouncer

import (
	"context"

	"github.com/spalhad/kvstore/internal/coordinator"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/kverrors"
	"github.com/spalhad/kvstore/internal/storage"
)

// backend is the bouncer's state: whether the node has activated, the run
// id it expects an Activate call to carry, and the two handles it gates
// access to.
type backend struct {
	active            bool
	expectedRunID     key.RunId
	storageHandle     *storage.Handle
	coordinatorHandle *coordinator.Handle
}

func newBackend(expectedRunID key.RunId, storageHandle *storage.Handle, coordinatorHandle *coordinator.Handle) *backend {
	return &backend{
		expectedRunID:     expectedRunID,
		storageHandle:     storageHandle,
		coordinatorHandle: coordinatorHandle,
	}
}

func (b *backend) OnCall(ctx context.Context, msg Call) {
	switch {
	case msg.Activate != nil:
		msg.Activate.Handle(func(in ActivateInput) (ActivateOutput, error) {
			switch {
			case b.active:
				return ActivateOutput{}, kverrors.AlreadyActive{}
			case in.RunID != b.expectedRunID:
				return ActivateOutput{}, kverrors.BadRunId{
					Expected: b.expectedRunID.String(),
					Got:      in.RunID.String(),
				}
			default:
				b.active = true
				return ActivateOutput{}, nil
			}
		})

	case msg.IsActive != nil:
		msg.IsActive.Handle(func(struct{}) (IsActiveOutput, error) {
			return IsActiveOutput{Active: b.active}, nil
		})

	case msg.Storage != nil:
		if !b.active {
			msg.Storage.ReplyError(kverrors.NotActive{})
			return
		}
		if err := b.storageHandle.Forward(ctx, *msg.Storage); err != nil {
			msg.Storage.ReplyError(err)
		}

	case msg.Coordinator != nil:
		if !b.active {
			msg.Coordinator.ReplyError(kverrors.NotActive{})
			return
		}
		if err := b.coordinatorHandle.Forward(ctx, *msg.Coordinator); err != nil {
			msg.Coordinator.ReplyError(err)
		}
	}
}
