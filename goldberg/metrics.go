// SPDX-License-Identifier: MIT

package goldberg

// MetricsCollector receives table lifecycle and lookup events.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordBuild reports a finished Build of the given order and row count.
	RecordBuild(order, rows int, seconds float64)
	// RecordLookup reports a successful Coefficient lookup of a word of length order.
	RecordLookup(order int)
	// RecordCacheHit reports a Cache.Get served from the cache.
	RecordCacheHit(order int)
	// RecordCacheMiss reports a Cache.Get that had to build.
	RecordCacheMiss(order int)
}

// nopMetrics discards everything.
type nopMetrics struct{}

var _ MetricsCollector = nopMetrics{}

func (nopMetrics) RecordBuild(_, _ int, _ float64) {}
func (nopMetrics) RecordLookup(_ int)              {}
func (nopMetrics) RecordCacheHit(_ int)            {}
func (nopMetrics) RecordCacheMiss(_ int)           {}
