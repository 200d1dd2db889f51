package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spalhad/kvstore/internal/key"
)

// dirBackend persists one JSON file per key under a data directory. There
// is no write-ahead log and no fsync: durability beyond what the
// filesystem's own page cache gives is out of scope for this backend.
type dirBackend struct {
	dataDir string
}

func newDirBackend(dataDir string) (*dirBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating data dir %s: %w", dataDir, err)
	}
	return &dirBackend{dataDir: dataDir}, nil
}

func (b *dirBackend) path(k key.Key) string {
	return filepath.Join(b.dataDir, k.String()+".json")
}

func (b *dirBackend) get(k key.Key) (json.RawMessage, bool, error) {
	data, err := os.ReadFile(b.path(k))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: reading %s: %w", b.path(k), err)
	}
	return json.RawMessage(data), true, nil
}

// put writes value to k's file. It first attempts an exclusive create; if
// that fails because the file already exists, it reopens for truncating
// overwrite instead. The two branches report different New values: a fresh
// file means the key was new, an overwrite means it was not.
func (b *dirBackend) put(k key.Key, value json.RawMessage) (bool, error) {
	path := b.path(k)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	isNew := true
	if os.IsExist(err) {
		isNew = false
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	}
	if err != nil {
		return false, fmt.Errorf("storage: opening %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(value); err != nil {
		return false, fmt.Errorf("storage: writing %s: %w", path, err)
	}
	return isNew, nil
}

func (b *dirBackend) OnCall(_ context.Context, msg Call) {
	switch {
	case msg.Get != nil:
		msg.Get.Handle(func(in GetInput) (GetOutput, error) {
			value, found, err := b.get(in.Key)
			return GetOutput{Value: value, Found: found}, err
		})
	case msg.Put != nil:
		msg.Put.Handle(func(in PutInput) (PutOutput, error) {
			isNew, err := b.put(in.Key, in.Value)
			return PutOutput{New: isNew}, err
		})
	}
}
