package bouncer

import (
	"github.com/spalhad/kvstore/internal/actorsys"
	"github.com/spalhad/kvstore/internal/coordinator"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/storage"
)

// Open spawns a bouncer actor, owned by tm, gating storageHandle and
// coordinatorHandle until a matching Activate call arrives.
func Open(tm *actorsys.TaskManager, expectedRunID key.RunId, storageHandle *storage.Handle, coordinatorHandle *coordinator.Handle, mailboxSize int) *Handle {
	return actorsys.Spawn(tm, newBackend(expectedRunID, storageHandle, coordinatorHandle), actorsys.Options{MailboxSize: mailboxSize})
}
