package longsparse

// DefaultInitialCapacity is the capacity hint used when none is given.
const DefaultInitialCapacity = 10

type options struct {
	initialCapacity int
}

// Option configures store construction.
type Option func(*options)

// WithInitialCapacity sets the capacity hint used for the initial buffers
// and re-established by Clear. A hint of 0 starts with empty buffers.
// Negative hints are treated as 0.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.initialCapacity = n
	}
}
