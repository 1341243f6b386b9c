// SPDX-License-Identifier: MIT

// Package goldberg: functional configuration for Build and Cache.
//
// Defaults:
//   - logger:    nil → Logger() at build time (zap no-op unless SetLogger)
//   - metrics:   no-op collector
//   - evaluator: DefaultEvaluator(), i.e. freelie over log(exp(A)·exp(B))
//
// Option constructors panic on nil arguments; that is a programmer error,
// not an input error.

package goldberg

import "go.uber.org/zap"

const (
	panicNilLogger    = "goldberg: WithLogger: logger must be non-nil"
	panicNilMetrics   = "goldberg: WithMetrics: collector must be non-nil"
	panicNilEvaluator = "goldberg: WithEvaluator: evaluator must be non-nil"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	logger    *zap.Logger
	metrics   MetricsCollector
	evaluator Evaluator
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		metrics:   nopMetrics{},
		evaluator: DefaultEvaluator(),
	}
}

// WithLogger routes build diagnostics to l instead of the package Logger().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// WithMetrics installs a metrics collector.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic(panicNilMetrics)
	}
	return func(o *Options) { o.metrics = m }
}

// WithEvaluator replaces the coefficient evaluator. Mostly useful in tests
// and for callers that evaluate a different series with the same layout.
func WithEvaluator(e Evaluator) Option {
	if e == nil {
		panic(panicNilEvaluator)
	}
	return func(o *Options) { o.evaluator = e }
}

// gatherOptions applies opts over the defaults and resolves the logger.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}
