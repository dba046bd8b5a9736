package demo

import (
	"context"
	"errors"
	"io"

	"github.com/katalvlaran/blastoff/trace"
)

// ErrUnknownProgram is returned by Lookup for names not in All().
var ErrUnknownProgram = errors.New("demo: unknown program")

// Env is the console a Program runs against.
type Env struct {
	In       io.Reader
	Out      io.Writer
	Recorder *trace.Recorder

	// Prompt and Message override the countdown texts when non-empty.
	Prompt  string
	Message string
}

// Program is one runnable demonstration.
type Program struct {
	Name  string
	Title string
	Run   func(ctx context.Context, env Env) error
}
