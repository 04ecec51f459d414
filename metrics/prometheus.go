// Package metrics provides a Prometheus implementation of the cache's
// Metrics interface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics counts cache lifecycle events as Prometheus counters.
// It satisfies types.Metrics.
type PrometheusMetrics struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Expirations   prometheus.Counter
	Invalidations prometheus.Counter
	Loads         prometheus.Counter
}

// NewPrometheusMetrics creates the counters and registers them with the
// given registerer under the given namespace.
//
// The registerer is injected so each cache (and each test) can own its own
// registry. Registering the same namespace twice on one registry panics,
// which is the usual promauto behavior.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Total number of reads that returned a live entry",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Total number of reads that found no live entry",
		}),
		Expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expirations_total",
			Help:      "Total number of entries removed lazily on read because their deadline had passed",
		}),
		Invalidations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalidations_total",
			Help:      "Total number of entries removed explicitly by the caller",
		}),
		Loads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Total number of misses that fell through to the backing store",
		}),
	}
}

func (m *PrometheusMetrics) Hit()        { m.Hits.Inc() }
func (m *PrometheusMetrics) Miss()       { m.Misses.Inc() }
func (m *PrometheusMetrics) Expire()     { m.Expirations.Inc() }
func (m *PrometheusMetrics) Invalidate() { m.Invalidations.Inc() }
func (m *PrometheusMetrics) Load()       { m.Loads.Inc() }
