package simsearch

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// Option configures engine construction.
type Option func(*options)

// WithLogger configures the logger used for engine operations.
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

// WithMetrics configures the metrics collector invoked after registration
// and ranking operations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithConcurrency sets the number of goroutines RankContext and
// SearchContext may score items on. Scoring independent items in parallel is
// safe because each item's state is private to that item; the final sort
// stays single-threaded.
//
// Values below 1 are treated as 1 (sequential). Rank and Search always run
// sequentially on the calling goroutine.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}
