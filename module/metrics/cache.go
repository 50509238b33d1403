package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-governance/module"
)

type CacheCollector struct {
	entries  *prometheus.GaugeVec
	hits     *prometheus.CounterVec
	notfound *prometheus.CounterVec
	misses   *prometheus.CounterVec
}

var _ module.CacheMetrics = (*CacheCollector)(nil)

func NewCacheCollector(registerer prometheus.Registerer) *CacheCollector {
	cc := &CacheCollector{
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "entries_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of entries in the cache",
		}, []string{LabelResource}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "hits_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of hits for the cache",
		}, []string{LabelResource}),
		notfound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "notfound_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not found in either cache or database",
		}, []string{LabelResource}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "misses_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not found in the cache, but found in the database",
		}, []string{LabelResource}),
	}
	registerer.MustRegister(cc.entries, cc.hits, cc.notfound, cc.misses)
	return cc
}

// CacheEntries records the size of the node identities cache.
func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.With(prometheus.Labels{LabelResource: resource}).Set(float64(entries))
}

// CacheHit records the number of hits in the node identities cache.
func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheNotFound records the number of times the queried item was not found in either cache
// or database.
func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notfound.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.With(prometheus.Labels{LabelResource: resource}).Inc()
}
