package cache

import (
	"context"
	"sync"
	"time"

	api "github.com/krisalay/memory-cache/api"
	"github.com/krisalay/memory-cache/engine"
	"github.com/krisalay/memory-cache/store"
	"github.com/krisalay/memory-cache/types"
	"github.com/samber/mo"
	"golang.org/x/sync/singleflight"
)

// MemoryCache satisfies the public contract.
var _ api.Cache = (*MemoryCache)(nil)

/*
MemoryCache is the main cache implementation.
This struct is the orchestrator that connects:
- the store (one mapping from key to entry)
- expiration
- loading
- write policies
- metrics
*/
type MemoryCache struct {
	// store is the actual mapping. The cache exclusively owns it;
	// nothing else ever aliases it.
	store store.Store

	// engine contains the "rules" of the cache: expiration, loader, write policy, metrics, clock.
	engine *engine.CacheEngine

	// mu covers Insert, Get and Invalidate as a unit. Get performs a
	// conditional read-then-delete (lazy eviction), and that check-and-remove
	// must be atomic with respect to concurrent inserts and invalidates on
	// the same key, otherwise a dangling expired entry could survive a lookup.
	mu sync.Mutex

	// singleflight prevents multiple goroutines from loading the same missing
	// key from the backing store simultaneously.
	sf singleflight.Group
}

func NewMemoryCache(engine *engine.CacheEngine) *MemoryCache {
	return &MemoryCache{
		store:  store.NewMapStore(),
		engine: engine,
	}
}

// loaded carries a loader result through singleflight.
type loaded struct {
	value mo.Option[string]
	ttl   time.Duration
}

/*
Get retrieves a value from the cache.
*/
func (c *MemoryCache) Get(ctx context.Context, key string) (mo.Option[string], error) {

	c.mu.Lock()

	if ent, ok := c.store.Get(key); ok {

		// Check if entry is expired
		if c.engine.IsExpired(ent) {
			// Lazy eviction: the read removes the dead entry.
			c.engine.Metrics.Expire()
			c.store.Delete(key)
		} else {
			// Cache hit
			c.engine.Metrics.Hit()

			// Update access time / sliding TTL / refresh logic
			c.engine.OnRead(key, ent)

			v := ent.Value
			c.mu.Unlock()
			return mo.Some(v), nil
		}
	}

	// Cache miss
	c.engine.Metrics.Miss()

	if c.engine.Loader == nil {
		c.mu.Unlock()
		return mo.None[string](), nil
	}

	// The loader may be slow (DB, network). Release the lock first so other
	// keys keep working while this one loads.
	c.mu.Unlock()

	/*
		singleflight ensures that:
		- If 100 goroutines request the same missing key,
		  only ONE of them loads it from the backing store.
		- Others wait for the result.
	*/
	res, err, _ := c.sf.Do(key, func() (any, error) {
		val, ttl, err := c.engine.Load(ctx, key)
		return loaded{value: val, ttl: ttl}, err
	})
	if err != nil {
		return mo.None[string](), err
	}

	ld := res.(loaded)
	v, ok := ld.value.Get()
	if !ok {
		return mo.None[string](), nil
	}

	// Store loaded value in cache with the TTL the loader reported
	_ = c.Insert(ctx, key, v, ld.ttl)

	return mo.Some(v), nil
}

/*
Insert stores a value with an explicit TTL.

The deadline is computed HERE, once, from the engine's clock:
expiresAt = now + ttl. A zero ttl yields a deadline of "now", which the
inclusive expiry check treats as already expired. A negative ttl is clamped
to zero. Inserting over an existing key replaces the entry entirely.
*/
func (c *MemoryCache) Insert(
	ctx context.Context,
	key string,
	value string,
	ttl time.Duration,
) error {

	if ttl < 0 {
		ttl = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.engine.Now()
	ent := &types.Entry{
		Key:       key,
		Value:     value,
		ExpiresAt: now.Add(ttl),
	}

	// Apply write policy + timestamp bookkeeping
	c.engine.OnWrite(ctx, ent)

	// Store entry
	c.store.Put(key, ent)

	return nil
}

/*
Invalidate deletes a key from the cache immediately, expired or not.
Invalidating an absent key is a no-op.
*/
func (c *MemoryCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.Get(key); !ok {
		return
	}

	c.engine.Metrics.Invalidate()
	c.store.Delete(key)
}

/*
TTL returns remaining time-to-live of a key.
Returns -2 when the key is absent or already past its deadline.
*/
func (c *MemoryCache) TTL(key string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Get(key)
	if !ok {
		return -2
	}

	d := ent.ExpiresAt.Sub(c.engine.Now())
	if d <= 0 {
		return -2
	}
	return d
}

/*
Len returns the number of entries currently in the mapping, including entries
past their deadline that no read has evicted yet.
*/
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Size()
}

/*
Close gracefully shuts down the cache.
This is important for write-back policies, so pending writes are flushed.
*/
func (c *MemoryCache) Close() {
	if c.engine.WritePolicy != nil {
		c.engine.WritePolicy.Close()
	}
}
