package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blastoff/trace"
)

// ErrNotSorted is returned by CheckSorted for sequences that are not ascending.
var ErrNotSorted = errors.New("search: sequence is not sorted ascending")

// Result is the outcome of a search: either Found(index) or NotFound().
// The zero value is NotFound.
type Result struct {
	index int
	found bool
}

// Found returns a Result holding index i.
func Found(i int) Result { return Result{index: i, found: true} }

// NotFound returns the empty Result.
func NotFound() Result { return Result{} }

// Index returns the found index and true, or (-1, false).
func (r Result) Index() (int, bool) {
	if !r.found {
		return -1, false
	}
	return r.index, true
}

// Found reports whether the target was located.
func (r Result) Found() bool { return r.found }

// String renders "Found(3)" or "NotFound".
func (r Result) String() string {
	if !r.found {
		return "NotFound"
	}
	return fmt.Sprintf("Found(%d)", r.index)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the callbacks applied during a search.
type Options struct {
	// OnProbe is called for every element compared against the target.
	OnProbe func(index, value int)

	// Recorder, if non-nil, receives a step per probe and a final
	// "found" or "not-found" step.
	Recorder *trace.Recorder
}

// DefaultOptions returns Options with a no-op OnProbe and no recorder.
func DefaultOptions() Options {
	return Options{
		OnProbe: func(int, int) {},
	}
}

// WithOnProbe registers a callback run on each probe.
func WithOnProbe(fn func(index, value int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

// WithRecorder records each probe into rec.
func WithRecorder(rec *trace.Recorder) Option {
	return func(o *Options) {
		o.Recorder = rec
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CheckSorted returns nil if s is ascending, or ErrNotSorted naming the
// first index whose element is greater than its successor.
func CheckSorted(s []int) error {
	for i := 0; i+1 < len(s); i++ {
		if s[i] > s[i+1] {
			return fmt.Errorf("%w: s[%d]=%d > s[%d]=%d", ErrNotSorted, i, s[i], i+1, s[i+1])
		}
	}
	return nil
}
