package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/memory-cache"
	"github.com/krisalay/memory-cache/engine"
	"github.com/krisalay/memory-cache/metrics"
	"github.com/krisalay/memory-cache/writepolicy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/mo"
)

// ================= BACKING STORE =================

type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]string)}
}

func (s *InMemoryStore) Load(ctx context.Context, key string) (mo.Option[string], time.Duration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	if v, ok := s.data[key]; ok {
		return mo.Some(v), 30 * time.Second, nil
	}
	return mo.None[string](), 0, nil
}

func (s *InMemoryStore) Store(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Println("STORE  → store:", key)
	s.data[key] = value
	return nil
}

func (s *InMemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// ================= MAIN =================

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- System Config ----------------
	fmt.Println("CACHE MODE      : WRITE-BACK")
	fmt.Println("TTL STRATEGY    : ExpireAfterWrite")
	fmt.Println("DEFAULT TTL     : per-insert")

	// ---------------- Backing Store ----------------
	store := NewInMemoryStore()
	_ = store.Store(ctx, "b", "beta")

	// ---------------- Metrics ----------------
	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, "memorycache")

	// ---------------- Cache Engine ----------------
	writePolicy := writepolicy.NewWriteBackPolicy(store, 1024)

	eng := engine.NewCacheEngine(
		nil, // default: fixed deadline at write
		nil,
		store,
		writePolicy,
		m,
		nil, // wall clock
	)

	c := cache.NewMemoryCache(eng)

	// ====================================================
	fmt.Println("\n==================== 1) INSERT + HIT ====================")
	_ = c.Insert(ctx, "user_xyz", "session_value", 30*time.Second)
	fmt.Println("CACHE  → INSERT user_xyz (TTL = 30s)")

	v, _ := c.Get(ctx, "user_xyz")
	fmt.Println("CACHE  → GET user_xyz =", v.OrElse("<not found>"))

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	_ = c.Insert(ctx, "x", "temp-value", 1*time.Second)
	fmt.Println("CACHE  → INSERT x (TTL = 1s)")

	time.Sleep(2 * time.Second)
	store.Delete("x") // the write-back flushed x; drop it so the miss is real

	fmt.Println("CACHE  → TTL expired for x")
	v, _ = c.Get(ctx, "x")
	fmt.Println("CACHE  → GET x after TTL =", v.OrElse("<not found>"))

	// ====================================================
	fmt.Println("\n==================== 3) ZERO TTL ====================")
	_ = c.Insert(ctx, "z", "already-dead", 0)
	time.Sleep(50 * time.Millisecond)
	store.Delete("z") // same: keep the backing store out of this scenario
	v, _ = c.Get(ctx, "z")
	fmt.Println("CACHE  → GET z (inserted with TTL = 0) =", v.OrElse("<not found>"))

	// ====================================================
	fmt.Println("\n==================== 4) SINGLEFLIGHT ====================")

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := c.Get(ctx, "b")
			fmt.Printf("GOROUTINE-%d → GET b = %v\n", id, val.OrElse("<not found>"))
		}(i)
	}
	wg.Wait()

	// ====================================================
	fmt.Println("\n==================== 5) INVALIDATE ====================")

	c.Invalidate("user_xyz")
	store.Delete("user_xyz") // remove from store as well to simulate true delete
	fmt.Println("CACHE  → INVALIDATE user_xyz")

	v, _ = c.Get(ctx, "user_xyz")
	fmt.Println("CACHE  → GET user_xyz after invalidate =", v.OrElse("<not found>"))

	// invalidate again: idempotent no-op
	c.Invalidate("user_xyz")
	fmt.Println("CACHE  → INVALIDATE user_xyz (again, no-op)")

	// ====================================================
	printMetrics(registry)

	// ====================================================
	fmt.Println("\n==================== SHUTDOWN ====================")
	c.Close()
	fmt.Println("SYSTEM → cache closed cleanly")
}

func printMetrics(registry *prometheus.Registry) {
	fmt.Println("\n==================== METRICS ====================")

	families, err := registry.Gather()
	if err != nil {
		fmt.Println("metrics gather failed:", err)
		return
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			fmt.Printf("%-40s : %.0f\n", mf.GetName(), metric.GetCounter().GetValue())
		}
	}
}
