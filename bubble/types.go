package bubble

import "github.com/katalvlaran/blastoff/trace"

// Stats reports the work done by one Sort call.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Option configures Sort via functional arguments.
type Option func(*Options)

// Options holds the callbacks applied while sorting.
type Options struct {
	// OnCompare is called with j before s[j] and s[j+1] are compared.
	OnCompare func(j int)

	// OnSwap is called with j after s[j] and s[j+1] were swapped.
	OnSwap func(j int)

	// Recorder receives a "compare" step per comparison and a "swap" step,
	// carrying the array after the swap, per exchange.
	Recorder *trace.Recorder
}

// DefaultOptions returns Options with no-op hooks and no recorder.
func DefaultOptions() Options {
	return Options{
		OnCompare: func(int) {},
		OnSwap:    func(int) {},
	}
}

// WithOnCompare registers a callback run before each comparison.
func WithOnCompare(fn func(j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback run after each swap.
func WithOnSwap(fn func(j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithRecorder records comparisons and swaps into rec.
func WithRecorder(rec *trace.Recorder) Option {
	return func(o *Options) {
		o.Recorder = rec
	}
}
