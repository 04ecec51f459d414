package types

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// Loader is the contract between the cache and the backing store.
type Loader interface {

	/*
		Load is called when the cache misses. The key was not found in memory
		(or was expired), so the cache asks the Loader to fetch it.

		1. Cache checks memory → key not found
		2. Cache calls Load(key)
		3. Loader fetches from DB/API
		4. Cache stores the result in memory with the returned TTL
		5. Cache returns the value

		The first return value is None when the backing store does not have
		the key either. The ttl tells the cache how long the loaded value may
		be served before it must be fetched again.
	*/
	Load(ctx context.Context, key string) (mo.Option[string], time.Duration, error)

	/*
		Store is called when the cache needs to write data back to the
		backing store.

		This is used by write policies:
		-------------------------------
		- Write-through: write immediately
		- Write-back: write asynchronously later

		This does NOT store data in the cache. It stores data in the backing
		store (DB/API/etc).
	*/
	Store(ctx context.Context, key string, value string) error
}
