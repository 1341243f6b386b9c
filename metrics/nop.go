// SPDX-License-Identifier: MIT

// Package metrics provides goldberg.MetricsCollector implementations: a
// no-op collector and a Prometheus-backed one.
package metrics

import "github.com/katalvlaran/bch/goldberg"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for tests or when tables are built
// outside any monitored process.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ goldberg.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	tbl, err := goldberg.Build(12, goldberg.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordBuild discards the build metric.
func (n *NopMetrics) RecordBuild(_ /* order */, _ /* rows */ int, _ /* seconds */ float64) {
	// No-op
}

// RecordLookup discards the lookup metric.
func (n *NopMetrics) RecordLookup(_ /* order */ int) {
	// No-op
}

// RecordCacheHit discards the cache hit metric.
func (n *NopMetrics) RecordCacheHit(_ /* order */ int) {
	// No-op
}

// RecordCacheMiss discards the cache miss metric.
func (n *NopMetrics) RecordCacheMiss(_ /* order */ int) {
	// No-op
}
