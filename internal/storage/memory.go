package storage

import (
	"context"
	"encoding/json"

	"github.com/spalhad/kvstore/internal/key"
)

// memoryBackend is the simplest storage backend: a plain map guarded by the
// actor's own single-consumer mailbox loop, so no mutex is needed.
type memoryBackend struct {
	data map[key.Key]json.RawMessage
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: make(map[key.Key]json.RawMessage)}
}

func (b *memoryBackend) OnCall(_ context.Context, msg Call) {
	switch {
	case msg.Get != nil:
		msg.Get.Handle(func(in GetInput) (GetOutput, error) {
			value, found := b.data[in.Key]
			return GetOutput{Value: value, Found: found}, nil
		})
	case msg.Put != nil:
		msg.Put.Handle(func(in PutInput) (PutOutput, error) {
			_, existed := b.data[in.Key]
			b.data[in.Key] = in.Value
			return PutOutput{New: !existed}, nil
		})
	}
}
