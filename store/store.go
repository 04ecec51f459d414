package store

import "github.com/krisalay/memory-cache/types"

/*
This file defines how the cache actually keeps its entries. The store is a
dumb mapping: it holds data and answers lookups, nothing more.

The store does NOT:
- Lock (the cache serializes every call, insert/get/invalidate as a unit)
- Decide expiration (that is the engine's job)
- Talk to backing stores
*/

// Store is the interface used by the cache to keep and retrieve entries.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.Entry, bool)

	// Put inserts or replaces an entry.
	Put(string, *types.Entry)

	// Delete removes an entry. Deleting an absent key is a no-op.
	Delete(string)

	// Size returns how many entries are stored, expired-but-unread included.
	Size() int
}

/*
mapStore is the map-backed implementation of Store.

A key maps to at most one live entry at any instant: Put on an existing key
replaces the entry wholesale, value and deadline both. Entries have no
lifecycle outside their map slot.
*/
type mapStore struct {
	data map[string]*types.Entry
}

func NewMapStore() *mapStore {
	return &mapStore{data: make(map[string]*types.Entry)}
}

// Get retrieves an entry from the store.
func (s *mapStore) Get(key string) (*types.Entry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

// Put inserts or replaces an entry. No merge semantics.
func (s *mapStore) Put(key string, ent *types.Entry) {
	s.data[key] = ent
}

// Delete removes an entry.
func (s *mapStore) Delete(key string) {
	delete(s.data, key)
}

// Size returns how many entries are in the store.
func (s *mapStore) Size() int {
	return len(s.data)
}
