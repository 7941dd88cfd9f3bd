package vptree

import (
	"github.com/hupe1980/vptree/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	seed             *uint64
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures tree construction.
type Option func(*options)

// WithLogger sets the structured logger used for build tracing.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after builds and queries.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithSeed makes pivot selection deterministic. Two builds over the same
// input with the same seed and worker budget produce the same layout.
// If not set, every build draws a fresh seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithController shares a process-wide worker limit between builds.
//
// A parallel build only spawns a helper goroutine when the controller grants
// a slot; otherwise that half is built in the calling goroutine. The answer a
// tree gives never depends on how many slots were granted.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}
