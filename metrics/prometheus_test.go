package metrics_test

import (
	"context"
	"testing"
	"time"

	cache "github.com/krisalay/memory-cache"
	"github.com/krisalay/memory-cache/engine"
	"github.com/krisalay/memory-cache/metrics"
	"github.com/krisalay/memory-cache/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// fixedClock lets the test cross an expiry deadline without sleeping.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestPrometheusMetricsImplementsMetrics(t *testing.T) {
	var _ types.Metrics = (*metrics.PrometheusMetrics)(nil)
}

func TestPrometheusCountersTrackCacheEvents(t *testing.T) {
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, "memorycache")

	clk := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	eng := engine.NewCacheEngine(nil, nil, nil, nil, m, clk)
	c := cache.NewMemoryCache(eng)

	c.Insert(ctx, "key1", "value1", 30*time.Second)

	c.Get(ctx, "key1")  // hit
	c.Get(ctx, "ghost") // miss

	clk.now = clk.now.Add(30 * time.Second)
	c.Get(ctx, "key1") // expire + miss

	c.Insert(ctx, "key2", "value2", 30*time.Second)
	c.Invalidate("key2")

	if got := testutil.ToFloat64(m.Hits); got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.Misses); got != 2 {
		t.Errorf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(m.Expirations); got != 1 {
		t.Errorf("expected 1 expiration, got %v", got)
	}
	if got := testutil.ToFloat64(m.Invalidations); got != 1 {
		t.Errorf("expected 1 invalidation, got %v", got)
	}
	if got := testutil.ToFloat64(m.Loads); got != 0 {
		t.Errorf("expected 0 loads without a loader, got %v", got)
	}
}

func TestPrometheusCountersAreRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics.NewPrometheusMetrics(registry, "memorycache")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	want := map[string]bool{
		"memorycache_hits_total":          false,
		"memorycache_misses_total":        false,
		"memorycache_expirations_total":   false,
		"memorycache_invalidations_total": false,
		"memorycache_loads_total":         false,
	}

	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}

	for name, seen := range want {
		if !seen {
			t.Errorf("counter %s was not registered", name)
		}
	}
}
