package cluster

import "github.com/katalvlaran/jbox/distance"

const panicLoggerNil = "cluster: WithLogger: logger must not be nil"

// options holds the resolved configuration of a Builder or Engine.
type options struct {
	logger   *Logger
	distance []distance.Option
}

// Option configures a Builder or an Engine.
type Option func(*options)

// WithLogger routes connection and run events to l.
// Default: NoopLogger(). Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithDistanceOptions forwards opts to distance.Build. Only Engine uses them.
func WithDistanceOptions(opts ...distance.Option) Option {
	return func(o *options) { o.distance = append(o.distance, opts...) }
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}
