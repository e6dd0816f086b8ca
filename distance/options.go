// SPDX-License-Identifier: MIT

// Package distance: functional configuration for Build.
//   - Option / Options (functional options with internal state),
//   - documented defaults (single source of truth),
//   - WithX constructors panic on nonsensical values (programmer error).

package distance

import "runtime"

// DefaultWorkers = 0 means "use runtime.GOMAXPROCS(0) workers".
const DefaultWorkers = 0

// minRowsPerWorker keeps small tables sequential; splitting a handful of rows
// across goroutines costs more than it saves.
const minRowsPerWorker = 64

const (
	panicWorkersInvalid = "distance: WithWorkers: workers must be >= 0"
	panicMetricNil      = "distance: WithMetric: metric must not be nil"
)

// Options holds the resolved configuration of a Build call.
type Options struct {
	metric  Metric
	workers int
}

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// WithMetric selects the distance metric. Default: Euclidean.
// Panics on nil.
func WithMetric(m Metric) Option {
	if m == nil {
		panic(panicMetricNil)
	}

	return func(o *Options) { o.metric = m }
}

// WithWorkers bounds the number of goroutines filling the table.
// 0 selects runtime.GOMAXPROCS(0); 1 forces a sequential fill.
// Panics on negative values.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over defaults and resolves derived values.
func gatherOptions(opts ...Option) Options {
	o := Options{metric: Euclidean, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
