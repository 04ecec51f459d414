package engine

import (
	"context"
	"time"

	"github.com/krisalay/memory-cache/expiration"
	"github.com/krisalay/memory-cache/refresh"
	"github.com/krisalay/memory-cache/types"
	"github.com/krisalay/memory-cache/writepolicy"
	"github.com/samber/mo"
)

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- When data is expired
- What the current time is (it owns the clock)
- When refresh hooks are triggered
- How data is loaded on cache miss
- How writes are propagated to backing store
- How metrics are recorded

It does NOT:
- Store data
- Handle locking
*/
type CacheEngine struct {

	// Expiration controls when a cache entry should be considered “too old”.
	// The default rule is ExpireAfterWrite: the deadline is fixed at insert.
	Expiration expiration.Strategy

	// Refresh is an optional hook that runs when data is read.
	// If nil, no refresh logic is executed.
	Refresh refresh.Hook

	// Loader is how the cache talks to the outside world when it does NOT have the data.
	// This can be a database call, an API call, or any external call.
	// This enables “read-through caching”. If nil, a miss is simply a miss.
	Loader types.Loader

	// WritePolicy decides what happens when data is written to the cache.
	// Examples:
	// - Write-through: write to DB immediately
	// - Write-back: write to DB asynchronously later
	//
	// If nil, cache writes stay only in memory.
	WritePolicy writepolicy.WritePolicy

	// Metrics is how we keep track of what the cache is doing.
	// Hits, misses, expirations, invalidations, loads.
	Metrics types.Metrics

	// Clock is the single time source for the whole cache. Deadlines are
	// computed from it at insert and compared against it at read, so there
	// is exactly one notion of "now".
	Clock types.Clock
}

/*
NewCacheEngine creates a CacheEngine.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	refresh refresh.Hook,
	loader types.Loader,
	writePolicy writepolicy.WritePolicy,
	metrics types.Metrics,
	clock types.Clock,
) *CacheEngine {

	// Ensure metrics is always non-nil
	// This avoids defensive nil checks throughout the codebase
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	// Same for the clock: default to the wall clock.
	if clock == nil {
		clock = types.SystemClock{}
	}

	// Same for expiration: the fixed write deadline is the default rule.
	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}

	return &CacheEngine{
		Expiration:  exp,
		Refresh:     refresh,
		Loader:      loader,
		WritePolicy: writePolicy,
		Metrics:     metrics,
		Clock:       clock,
	}
}

// Now reads the engine's clock.
func (e *CacheEngine) Now() time.Time {
	return e.Clock.Now()
}

/*
IsExpired checks whether a cache entry is expired right now.

BEHAVIOR:
---------
- Delegates the decision to the configured Expiration strategy
- Uses the engine's clock, the same one that computed the deadline
*/
func (e *CacheEngine) IsExpired(ent *types.Entry) bool {
	return e.Expiration.IsExpired(ent, e.Clock.Now())
}

/*
OnRead is called every time the cache successfully returns a value.

This is where read-related behavior lives.

Typical things that happen here:
- Update LastAccessedAt
- Push the deadline forward for expire-after-access strategies
- Trigger a background refresh
*/
func (e *CacheEngine) OnRead(key string, ent *types.Entry) {
	e.Expiration.OnAccess(ent, e.Clock.Now())

	// Refresh is optional and best-effort.
	// It should never slow down the read path.
	if e.Refresh != nil {
		e.Refresh.OnRead(key, ent)
	}
}

/*
OnWrite is called whenever something is written to the cache.

This is where we:
- Record write timestamps through the expiration strategy
- Forward the write to the backing store if a write policy is configured
*/
func (e *CacheEngine) OnWrite(ctx context.Context, ent *types.Entry) {
	e.Expiration.OnWrite(ent, e.Clock.Now())

	if e.WritePolicy != nil {
		e.WritePolicy.OnWrite(ctx, ent.Key, ent.Value)
	}
}

/*
Load is used when the cache does NOT have the data.

This usually means:
- A database call
- A network request

Returns None (plus a zero TTL) when no loader is configured: a miss stays a
miss, which is the default behavior.
*/
func (e *CacheEngine) Load(ctx context.Context, key string) (mo.Option[string], time.Duration, error) {
	if e.Loader == nil {
		return mo.None[string](), 0, nil
	}
	e.Metrics.Load()
	return e.Loader.Load(ctx, key)
}
