// SPDX-License-Identifier: MIT

package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bch/goldberg"
)

// PrometheusCollector implements goldberg.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on the first recorded event,
// so constructing one that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	tableRows     *prometheus.GaugeVec
	lookups       *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ goldberg.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "bch" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "bch"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.builds = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "builds_total",
			Help:      "Total coefficient tables built, by order.",
		}, []string{"order"})
		p.buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "build_duration_seconds",
			Help:      "Wall time spent building a coefficient table.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4.4min
		})
		p.tableRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "table_rows",
			Help:      "Rows held by the most recently built table, by order.",
		}, []string{"order"})
		p.lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "lookups_total",
			Help:      "Total successful coefficient lookups, by word length.",
		}, []string{"order"})
		p.cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "cache_hits_total",
			Help:      "Table cache lookups served without building, by order.",
		}, []string{"order"})
		p.cacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "goldberg",
			Name:      "cache_misses_total",
			Help:      "Table cache lookups that triggered a build, by order.",
		}, []string{"order"})

		p.reg.MustRegister(p.builds)
		p.reg.MustRegister(p.buildDuration)
		p.reg.MustRegister(p.tableRows)
		p.reg.MustRegister(p.lookups)
		p.reg.MustRegister(p.cacheHits)
		p.reg.MustRegister(p.cacheMisses)
	})
}

// RecordBuild counts a finished build and observes its duration.
func (p *PrometheusCollector) RecordBuild(order, rows int, seconds float64) {
	p.ensureRegistered()
	label := strconv.Itoa(order)
	p.builds.WithLabelValues(label).Inc()
	p.tableRows.WithLabelValues(label).Set(float64(rows))
	p.buildDuration.Observe(seconds)
}

// RecordLookup counts a successful lookup.
func (p *PrometheusCollector) RecordLookup(order int) {
	p.ensureRegistered()
	p.lookups.WithLabelValues(strconv.Itoa(order)).Inc()
}

// RecordCacheHit counts a cache hit.
func (p *PrometheusCollector) RecordCacheHit(order int) {
	p.ensureRegistered()
	p.cacheHits.WithLabelValues(strconv.Itoa(order)).Inc()
}

// RecordCacheMiss counts a cache miss.
func (p *PrometheusCollector) RecordCacheMiss(order int) {
	p.ensureRegistered()
	p.cacheMisses.WithLabelValues(strconv.Itoa(order)).Inc()
}
