package cache

import (
	"context"
	"time"

	"github.com/samber/mo"
)

/*
Cache defines the PUBLIC API of our TTL cache.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details (storage, expiration strategy, locking, data loading, and data writing)
are hidden behind this interface.
*/
type Cache interface {

	/*
		Insert stores a key-value pair with an explicit time-to-live (TTL).

		BEHAVIOR:
		---------
		- Computes the entry's deadline as now + ttl, using the cache's clock
		- Stores or REPLACES the entry for the key: value and deadline both,
		  no merge semantics
		- A ttl of zero means the entry is immediately expired for all
		  subsequent reads
		- A negative ttl is treated the same as zero

		Insertion always succeeds: the "key already exists" case is absorbed
		by overwrite semantics. The error return is nil for the in-memory
		path and exists so implementations with failing collaborators can
		surface them.
	*/
	Insert(ctx context.Context, key string, value string, ttl time.Duration) error

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists in cache and is NOT expired:
		   - Return Some(value) immediately (cache hit)

		2. If the key exists but its deadline has passed (now >= deadline):
		   - The entry is REMOVED as a side effect (lazy eviction)
		   - The read continues as a miss

		3. On a miss:
		   - With no loader configured: return None
		   - With a loader: fetch from the backing store, insert the result
		     with the TTL the loader reports, and return it

		GUARANTEE:
		----------
		After any Get that returns None for a previously inserted key, that
		key is absent from the mapping. No dangling expired entry survives a
		lookup.
	*/
	Get(ctx context.Context, key string) (mo.Option[string], error)

	/*
		Invalidate deletes a key from the cache immediately, expired or not.

		BEHAVIOR:
		---------
		- Removes the key from in-memory storage
		- Does NOT affect the backing store

		This operation is idempotent:
		- Invalidating a non-existing key is safe and does nothing
	*/
	Invalidate(key string)

	/*
		TTL returns the remaining time-to-live for a key.

		RETURN VALUES (Redis-compatible semantics):
		-------------------------------------------
		> 0   : Duration remaining before expiration
		-2    : Key does not exist or is already expired
	*/
	TTL(key string) time.Duration

	/*
		Len returns the number of entries currently in the mapping.

		Note: this INCLUDES entries that are past their deadline but have not
		been read since. Expiration is lazy; an expired entry that is never
		read again stays in memory until overwritten or invalidated.
	*/
	Len() int

	/*
		Close gracefully shuts down the cache.

		BEHAVIOR:
		---------
		- Flushes any pending write-back operations

		WHEN TO CALL:
		-------------
		- Application shutdown
		- Tests cleanup
	*/
	Close()
}
