package coordinator

import "github.com/spalhad/kvstore/internal/actorsys"

// Open spawns a coordinator actor under cfg, owned by tm.
func Open(tm *actorsys.TaskManager, cfg Config, mailboxSize int) *Handle {
	return actorsys.Spawn(tm, newBackend(cfg), actorsys.Options{MailboxSize: mailboxSize})
}
