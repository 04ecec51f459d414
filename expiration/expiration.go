// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/krisalay/memory-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Instead of
hard-coding expiration logic into the cache, we define a strategy so
expiration behavior can be swapped easily.

Every method takes the current instant from the caller. Strategies never read
the clock themselves: the engine owns the clock, and deadline computation and
deadline comparison must see the same time source.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at the given instant.
	IsExpired(*types.Entry, time.Time) bool

	// OnAccess is called whenever a cache entry is read successfully.
	OnAccess(*types.Entry, time.Time)

	// OnWrite is called whenever a cache entry is written or replaced.
	OnWrite(*types.Entry, time.Time)
}
