package types

import "time"

// Entry is intentionally mutable for timestamps.
// Timestamp races are acceptable.
type Entry struct {
	Key            string
	Value          string
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpiresAt      time.Time
}

// IsExpiredAt reports whether the entry's deadline has passed at the given
// instant. The deadline is INCLUSIVE: an entry whose ExpiresAt equals now is
// already expired. This is what makes ttl=0 mean "expired for every
// subsequent read" even before the clock ticks.
func (e *Entry) IsExpiredAt(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
