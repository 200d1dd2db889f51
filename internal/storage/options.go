package storage

import (
	"time"

	"github.com/spalhad/kvstore/internal/actorsys"
)

// Options configures how a storage backend's actor is spawned.
type Options struct {
	TaskManager *actorsys.TaskManager
	MailboxSize int
}

func (o Options) spawnOpts() actorsys.Options {
	return actorsys.Options{MailboxSize: o.MailboxSize}
}

// OpenMemory spawns an in-memory storage backend.
func OpenMemory(o Options) *Handle {
	return actorsys.Spawn(o.TaskManager, newMemoryBackend(), o.spawnOpts())
}

// OpenDir spawns a directory-backed storage backend rooted at dataDir.
func OpenDir(o Options, dataDir string) (*Handle, error) {
	backend, err := newDirBackend(dataDir)
	if err != nil {
		return nil, err
	}
	return actorsys.Spawn(o.TaskManager, backend, o.spawnOpts()), nil
}

// OpenClient spawns an HTTP-backed storage backend targeting a single
// peer's internal-kv routes at baseURL.
func OpenClient(o Options, baseURL string, timeout time.Duration) *Handle {
	return actorsys.Spawn(o.TaskManager, newClientBackend(baseURL, timeout), o.spawnOpts())
}
