package countdown

import (
	"errors"

	"github.com/katalvlaran/blastoff/trace"
)

// Sentinel errors for Run and Parse.
var (
	// ErrInvalidInput is returned when the start value is not a base-10 integer.
	ErrInvalidInput = errors.New("countdown: invalid input")

	// ErrNoInput is returned when the reader yields no line at all.
	ErrNoInput = errors.New("countdown: no input")
)

// DefaultMessage is printed after the last value.
const DefaultMessage = "Blast off!"

// Option configures Countdown and Run via functional arguments.
type Option func(*Options)

// Options holds the console texts and hooks.
type Options struct {
	// Prompt is written (without newline) before reading the start value.
	Prompt string

	// Message is the terminal line written by Run.
	Message string

	// OnTick is called with each value as it is produced.
	OnTick func(v int)

	// Recorder receives a "tick" step per value and a print step per line.
	Recorder *trace.Recorder
}

// DefaultOptions returns Options with no prompt, DefaultMessage and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Message: DefaultMessage,
		OnTick:  func(int) {},
	}
}

// WithPrompt sets the text written before reading input.
func WithPrompt(p string) Option {
	return func(o *Options) {
		o.Prompt = p
	}
}

// WithMessage replaces the terminal message. An empty string keeps the default.
func WithMessage(m string) Option {
	return func(o *Options) {
		if m != "" {
			o.Message = m
		}
	}
}

// WithOnTick registers a callback run for every value.
func WithOnTick(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}

// WithRecorder records ticks and printed lines into rec.
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
