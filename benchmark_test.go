package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	cache "github.com/krisalay/memory-cache"
	"github.com/krisalay/memory-cache/engine"
	"github.com/krisalay/memory-cache/writepolicy"
)

func newBenchmarkCache() *cache.MemoryCache {
	store := NewTestStore()

	writePolicy := writepolicy.NewWriteBackPolicy(store, 1024)

	eng := engine.NewCacheEngine(
		nil,
		nil,
		store,
		writePolicy,
		nil,
		nil,
	)

	return cache.NewMemoryCache(eng)
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache()

	c.Insert(ctx, "key", "value", time.Hour)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(ctx, "key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("miss-%d", i)
		c.Get(ctx, key)
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkCacheParallelGet(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache()

	for i := 0; i < 1000; i++ {
		c.Insert(ctx, fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i), time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get(ctx, "key-42")
		}
	})
}

//
// ================= WRITE BENCH =================
//

func BenchmarkCacheInsert(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(ctx, fmt.Sprintf("key-%d", i), "value", time.Hour)
	}
}

//
// ================= HIGH CONCURRENCY TEST =================
//

func BenchmarkCacheHighConcurrency(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache()

	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		c.Insert(ctx, keys[i], fmt.Sprintf("value-%d", i), time.Hour)
	}

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				c.Get(ctx, keys[j%len(keys)])
			}
		}(i)
	}
	wg.Wait()
}
