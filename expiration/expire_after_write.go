package expiration

import (
	"time"

	"github.com/krisalay/memory-cache/types"
)

/*
ExpireAfterWrite is the default expiration rule: the deadline is fixed at
write time (insertion time + requested TTL) and never moves afterwards.

Reads do NOT extend the lifetime. An entry inserted with a 30 second TTL is
gone 30 seconds later no matter how often it was read in between.
*/
type ExpireAfterWrite struct{}

// IsExpired checks whether the entry is expired at this moment.
// The deadline is inclusive: expired at now >= ExpiresAt, not strictly after.
func (ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	return ent.IsExpiredAt(now)
}

// OnAccess only records the access. The deadline stays where insert put it.
func (ExpireAfterWrite) OnAccess(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
}

// OnWrite records creation time. The caller has already computed ExpiresAt
// from the requested TTL, so the deadline is not touched here.
func (ExpireAfterWrite) OnWrite(ent *types.Entry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
}
