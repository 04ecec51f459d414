package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when the cache successfully returns a value.
	Hit()

	// Miss is called when the cache does NOT find a live entry for a key.
	Miss()

	// Expire is called when a key is removed lazily because a read found it
	// past its deadline.
	Expire()

	// Invalidate is called when a key is explicitly removed by the caller.
	Invalidate()

	// Load is called when a cache miss falls through to the backing store.
	Load()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

If someone does not care about metrics, the cache should still work without
nil pointer checks or if metrics != nil conditions scattered everywhere.
So we provide a default implementation that simply ignores all metric events.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Expire()     {}
func (NoopMetrics) Invalidate() {}
func (NoopMetrics) Load()       {}
