package chunkopt

import "time"

// DefaultTimeout bounds the time CompareLines and CompareWords spend in the
// diff engine.
const DefaultTimeout = time.Second

type config struct {
	threshold int
	timeout   time.Duration
	raw       bool
}

func newConfig(o []FuncOption) config {
	cfg := config{
		threshold: DefaultUnimportantLineCharCount,
		timeout:   DefaultTimeout,
	}
	for _, f := range o {
		f(&cfg)
	}
	return cfg
}

type FuncOption func(*config)

// WithThreshold sets the non-space character count at or below which a line
// is unimportant in the line policy's second pass. 0 disables that pass.
func WithThreshold(n int) FuncOption {
	return func(o *config) {
		o.threshold = n
	}
}

// WithTimeout sets the diff engine's time limit. 0 means no limit.
func WithTimeout(d time.Duration) FuncOption {
	return func(o *config) {
		o.timeout = d
	}
}

// WithRaw skips boundary optimization and returns the diff engine's ranges.
func WithRaw() FuncOption {
	return func(o *config) {
		o.raw = true
	}
}
