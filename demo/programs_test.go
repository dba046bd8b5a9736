package demo_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/blastoff/countdown"
	"github.com/katalvlaran/blastoff/demo"
	"github.com/katalvlaran/blastoff/search"
	"github.com/katalvlaran/blastoff/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the named program with input and returns its console output.
func run(t *testing.T, name, input string, rec *trace.Recorder) string {
	t.Helper()
	p, err := demo.Lookup(name)
	require.NoError(t, err)
	var out bytes.Buffer
	env := demo.Env{In: strings.NewReader(input), Out: &out, Recorder: rec}
	require.NoError(t, p.Run(context.Background(), env))
	return out.String()
}

func TestPrograms_Output(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"countdown", "3\n", demo.DefaultPrompt + "3\n2\n1\nBlast off!\n"},
		{"linear", "", "found 9 at index 2\nDone!\n"},
		{"bubble", "", "[1 2 5 7 9]\nDone!\n"},
		{"binary", "", "6 not found\nDone!\n"},
		{"roundtrip", "", "[1 2 5 7 9]\nfound 9 at index 4\nDone!\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, run(t, tc.name, tc.input, nil))
		})
	}
}

// TestPrograms_Repeatable ensures the literal inputs are not mutated between runs.
func TestPrograms_Repeatable(t *testing.T) {
	first := run(t, "roundtrip", "", nil)
	assert.Equal(t, first, run(t, "roundtrip", "", nil))
	assert.Equal(t, run(t, "linear", "", nil), run(t, "linear", "", nil))
}

// TestPrograms_Recorder checks printed lines reach the recording.
func TestPrograms_Recorder(t *testing.T) {
	rec := trace.NewRecorder("binary")
	run(t, "binary", "", rec)

	p := trace.NewPlayer(rec.Session())
	p.ToEnd()
	assert.Equal(t, []string{"6 not found", "Done!"}, p.Outputs())
	assert.Equal(t, 2, p.Vars()["high"], "loop ends with high below low")
	assert.Equal(t, 3, p.Vars()["low"])
}

func TestCountdown_BadInput(t *testing.T) {
	p, err := demo.Lookup("countdown")
	require.NoError(t, err)
	var out bytes.Buffer
	err = p.Run(context.Background(), demo.Env{In: strings.NewReader("abc\n"), Out: &out})
	assert.ErrorIs(t, err, countdown.ErrInvalidInput)
}

func TestCountdown_EnvTexts(t *testing.T) {
	p, err := demo.Lookup("countdown")
	require.NoError(t, err)
	var out bytes.Buffer
	env := demo.Env{In: strings.NewReader("1\n"), Out: &out, Prompt: "N? ", Message: "Go!"}
	require.NoError(t, p.Run(context.Background(), env))
	assert.Equal(t, "N? 1\nGo!\n", out.String())
}

func TestLookup(t *testing.T) {
	_, err := demo.Lookup("quicksort")
	assert.ErrorIs(t, err, demo.ErrUnknownProgram)
	assert.Equal(t, []string{"countdown", "linear", "bubble", "binary", "roundtrip"}, demo.Names())
	for _, p := range demo.All() {
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Run)
	}
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "found 9 at index 2", demo.FormatResult(9, search.Found(2)))
	assert.Equal(t, "6 not found", demo.FormatResult(6, search.NotFound()))
}

func TestLiterals_AreCopies(t *testing.T) {
	a := demo.Unsorted()
	a[0] = 100
	assert.Equal(t, []int{5, 2, 9, 1, 7}, demo.Unsorted())
	assert.Equal(t, []int{1, 2, 5, 7, 9}, demo.Sorted())
}
