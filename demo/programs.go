package demo

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/blastoff/bubble"
	"github.com/katalvlaran/blastoff/countdown"
	"github.com/katalvlaran/blastoff/search"
)

// Literal inputs of the demonstrations.
var (
	unsortedDemo = []int{5, 2, 9, 1, 7}
	sortedDemo   = []int{1, 2, 5, 7, 9}
)

const (
	linearTarget    = 9
	binaryTarget    = 6
	roundTripTarget = 9

	// DefaultPrompt is shown by the countdown program before reading N.
	DefaultPrompt = "Enter a number to start the countdown: "
	doneLine      = "Done!"
)

// Unsorted returns a fresh copy of the unsorted demonstration array.
func Unsorted() []int { return slices.Clone(unsortedDemo) }

// Sorted returns a fresh copy of the ascending demonstration array.
func Sorted() []int { return slices.Clone(sortedDemo) }

// All returns the programs in presentation order.
func All() []Program {
	return []Program{
		{Name: "countdown", Title: "Fan Favorite: BLASTOFF!", Run: runCountdown},
		{Name: "linear", Title: "Linear Search", Run: runLinear},
		{Name: "bubble", Title: "Bubble Sort", Run: runBubble},
		{Name: "binary", Title: "Binary Search", Run: runBinary},
		{Name: "roundtrip", Title: "Bubble Sort then Binary Search", Run: runRoundTrip},
	}
}

// Names returns the program names in presentation order.
func Names() []string {
	var out []string
	for _, p := range All() {
		out = append(out, p.Name)
	}
	return out
}

// Lookup returns the program called name.
func Lookup(name string) (Program, error) {
	for _, p := range All() {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownProgram, name, Names())
}

func (e Env) println(line string) error {
	e.Recorder.Print(line)
	_, err := fmt.Fprintln(e.Out, line)
	return err
}

// FormatResult renders a search outcome as a console line.
func FormatResult(target int, r search.Result) string {
	if i, ok := r.Index(); ok {
		return fmt.Sprintf("found %d at index %d", target, i)
	}
	return fmt.Sprintf("%d not found", target)
}

func runCountdown(ctx context.Context, env Env) error {
	prompt := env.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return countdown.Run(ctx, env.In, env.Out,
		countdown.WithPrompt(prompt),
		countdown.WithMessage(env.Message),
		countdown.WithRecorder(env.Recorder),
	)
}

func runLinear(_ context.Context, env Env) error {
	arr := Unsorted()
	res := search.Linear(arr, linearTarget, search.WithRecorder(env.Recorder))
	if err := env.println(FormatResult(linearTarget, res)); err != nil {
		return err
	}
	return env.println(doneLine)
}

func runBubble(_ context.Context, env Env) error {
	arr := Unsorted()
	bubble.Sort(arr, bubble.WithRecorder(env.Recorder))
	if err := env.println(fmt.Sprint(arr)); err != nil {
		return err
	}
	return env.println(doneLine)
}

func runBinary(_ context.Context, env Env) error {
	arr := Sorted()
	res := search.Binary(arr, binaryTarget, search.WithRecorder(env.Recorder))
	if err := env.println(FormatResult(binaryTarget, res)); err != nil {
		return err
	}
	return env.println(doneLine)
}

func runRoundTrip(_ context.Context, env Env) error {
	arr := Unsorted()
	bubble.Sort(arr, bubble.WithRecorder(env.Recorder))
	if err := env.println(fmt.Sprint(arr)); err != nil {
		return err
	}
	res := search.Binary(arr, roundTripTarget, search.WithRecorder(env.Recorder))
	if err := env.println(FormatResult(roundTripTarget, res)); err != nil {
		return err
	}
	return env.println(doneLine)
}
