package storage

import (
	"context"
	"time"

	"github.com/spalhad/kvstore/internal/client"
)

// DefaultClientTimeout is the HTTP timeout used by a peer-backed storage
// handle when none is configured.
const DefaultClientTimeout = 90 * time.Second

// clientBackend adapts a single peer's internal-kv routes to the storage
// call set, via the shared HTTP client SDK.
type clientBackend struct {
	conn *client.Client
}

func newClientBackend(baseURL string, timeout time.Duration) *clientBackend {
	if timeout == 0 {
		timeout = DefaultClientTimeout
	}
	return &clientBackend{conn: client.New(baseURL, timeout)}
}

func (b *clientBackend) OnCall(ctx context.Context, msg Call) {
	switch {
	case msg.Get != nil:
		msg.Get.Handle(func(in GetInput) (GetOutput, error) {
			value, found, err := b.conn.GetInternal(ctx, in.Key)
			return GetOutput{Value: value, Found: found}, err
		})
	case msg.Put != nil:
		msg.Put.Handle(func(in PutInput) (PutOutput, error) {
			isNew, err := b.conn.PutInternal(ctx, in.Key, in.Value)
			return PutOutput{New: isNew}, err
		})
	}
}
