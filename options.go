package rowhash

import "runtime"

// DefaultMaxNestingDepth bounds list/struct nesting in input column types.
const DefaultMaxNestingDepth = 16

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
	maxDepth    int
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
		maxDepth:    DefaultMaxNestingDepth,
	}
}

// Option configures a hash call.
type Option func(*options)

// WithLogger configures the logger used by the call.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector notified after the
// call completes.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithParallelism sets the number of worker goroutines hashing row chunks.
// Values < 1 fall back to GOMAXPROCS. The degree of parallelism never
// affects output values, only throughput.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithMaxNestingDepth overrides the maximum accepted list/struct nesting
// depth for input column types.
func WithMaxNestingDepth(depth int) Option {
	return func(o *options) {
		if depth < 1 {
			depth = DefaultMaxNestingDepth
		}
		o.maxDepth = depth
	}
}
