package countdown

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/blastoff/trace"
)

// Countdown returns n, n-1, ..., 1. Each value is one less than the previous
// and the loop stops when the value reaches zero, so n <= 0 yields an empty
// slice.
func Countdown(n int, opts ...Option) []int {
	o := buildOptions(opts)

	out := make([]int, 0, max(n, 0))
	for start := n; start > 0; start-- {
		o.OnTick(start)
		o.Recorder.Record("tick", trace.Vars{"start": start}, nil)
		out = append(out, start)
	}
	return out
}

// Parse interprets line as a base-10 integer, ignoring surrounding whitespace.
func Parse(line string) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidInput, s, err)
	}
	return n, nil
}

// ReadStart writes the prompt, reads one line from in and parses it.
func ReadStart(in io.Reader, out io.Writer, opts ...Option) (int, error) {
	o := buildOptions(opts)
	return readStart(in, out, o)
}

func readStart(in io.Reader, out io.Writer, o Options) (int, error) {
	if o.Prompt != "" {
		if _, err := io.WriteString(out, o.Prompt); err != nil {
			return 0, err
		}
	}
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("countdown: read input: %w", err)
		}
		return 0, ErrNoInput
	}
	return Parse(sc.Text())
}

// Run reads the start value from in and writes the countdown to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	o := buildOptions(opts)

	n, err := readStart(in, out, o)
	if err != nil {
		return err
	}
	o.Recorder.Record("input", trace.Vars{"start": n}, nil)
	return Print(ctx, n, out, opts...)
}

// Print writes the countdown from n followed by the terminal message.
func Print(ctx context.Context, n int, out io.Writer, opts ...Option) error {
	o := buildOptions(opts)

	for start := n; start > 0; start-- {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		o.OnTick(start)
		o.Recorder.Record("tick", trace.Vars{"start": start}, nil)
		if err := writeLine(out, o.Recorder, strconv.Itoa(start)); err != nil {
			return err
		}
	}
	return writeLine(out, o.Recorder, o.Message)
}

func writeLine(out io.Writer, rec *trace.Recorder, line string) error {
	rec.Print(line)
	_, err := fmt.Fprintln(out, line)
	return err
}
