package expiration

import (
	"time"

	"github.com/krisalay/memory-cache/types"
)

/*
ExpireAfterAccess implements a very common cache behavior called "expire after access" or "sliding TTL".
Every time someone reads the data, the expiration timer is pushed forward. As long as the data keeps
getting used, it stays alive. If nobody touches it for a while, it expires.
*/
type ExpireAfterAccess struct {

	// TTL (Time-To-Live) defines how long the entry should remain valid AFTER it is accessed.
	TTL time.Duration
}

// IsExpired checks whether the entry is expired at this moment.
func (e *ExpireAfterAccess) IsExpired(ent *types.Entry, now time.Time) bool {
	return ent.IsExpiredAt(now)
}

/*
OnAccess is called every time the cache successfully returns a value. This is the key part of "expire after access".
1. Update LastAccessedAt to now
2. Push ExpiresAt forward by TTL
*/
func (e *ExpireAfterAccess) OnAccess(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
	ent.ExpiresAt = now.Add(e.TTL)
}

/*
OnWrite is called when the entry is first written or replaced in the cache.
The caller sets the initial deadline from the insert TTL; we record the
timestamps and leave the explicit deadline alone. The slide only starts on
the first read.
*/
func (e *ExpireAfterAccess) OnWrite(ent *types.Entry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
}
