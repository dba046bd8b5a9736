package countdown_test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/blastoff/countdown"
	"github.com/katalvlaran/blastoff/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountdown_Values checks N values, each one less than the previous.
func TestCountdown_Values(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 100} {
		got := countdown.Countdown(n)
		require.Len(t, got, n)
		assert.Equal(t, n, got[0])
		assert.Equal(t, 1, got[len(got)-1])
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1]-1, got[i])
		}
	}
}

// TestCountdown_NonPositive ensures zero and negative starts produce nothing.
func TestCountdown_NonPositive(t *testing.T) {
	assert.Empty(t, countdown.Countdown(0))
	assert.Empty(t, countdown.Countdown(-3))
}

func TestCountdown_OnTick(t *testing.T) {
	var ticks []int
	countdown.Countdown(3, countdown.WithOnTick(func(v int) { ticks = append(ticks, v) }))
	assert.Equal(t, []int{3, 2, 1}, ticks)
}

// TestRun_Output verifies the console transcript for a valid start value.
func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	err := countdown.Run(context.Background(), strings.NewReader("3\n"), &out,
		countdown.WithPrompt("Enter a number to start the countdown: "))
	require.NoError(t, err)
	assert.Equal(t, "Enter a number to start the countdown: 3\n2\n1\nBlast off!\n", out.String())
}

// TestRun_ZeroStart prints only the terminal message.
func TestRun_ZeroStart(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, countdown.Run(context.Background(), strings.NewReader(" 0 \n"), &out))
	assert.Equal(t, "Blast off!\n", out.String())
}

// TestRun_NegativeStart prints no values for a negative start read from input.
func TestRun_NegativeStart(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, countdown.Run(context.Background(), strings.NewReader(" -2 \n"), &out))
	assert.Equal(t, "Blast off!\n", out.String())
}

func TestRun_CustomMessage(t *testing.T) {
	var out bytes.Buffer
	err := countdown.Run(context.Background(), strings.NewReader("1"), &out,
		countdown.WithMessage("Liftoff"))
	require.NoError(t, err)
	assert.Equal(t, "1\nLiftoff\n", out.String())
}

// TestRun_InvalidInput checks non-numeric input fails with ErrInvalidInput
// and the underlying strconv error.
func TestRun_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := countdown.Run(context.Background(), strings.NewReader("ten\n"), &out)
	assert.ErrorIs(t, err, countdown.ErrInvalidInput)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Empty(t, out.String(), "nothing is printed on bad input")
}

func TestRun_NoInput(t *testing.T) {
	var out bytes.Buffer
	err := countdown.Run(context.Background(), strings.NewReader(""), &out)
	assert.ErrorIs(t, err, countdown.ErrNoInput)
}

// TestPrint_Cancelled ensures a cancelled context stops the loop.
func TestPrint_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := countdown.Print(ctx, 5, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

// TestRun_Recorder checks ticks and printed lines are recorded in order.
func TestRun_Recorder(t *testing.T) {
	rec := trace.NewRecorder("countdown")
	var out bytes.Buffer
	require.NoError(t, countdown.Run(context.Background(), strings.NewReader("2\n"), &out,
		countdown.WithRecorder(rec)))

	p := trace.NewPlayer(rec.Session())
	p.ToEnd()
	assert.Equal(t, []string{"2", "1", "Blast off!"}, p.Outputs())
	assert.Equal(t, trace.Vars{"start": 1}, p.Vars())

	labels := make([]string, 0, rec.Len())
	for _, st := range rec.Session().Steps {
		labels = append(labels, st.Label)
	}
	assert.Equal(t, []string{"input", "tick", "print", "tick", "print", "print"}, labels)
}

func TestParse(t *testing.T) {
	n, err := countdown.Parse("  42\r\n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = countdown.Parse("-7")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	_, err = countdown.Parse("4.5")
	assert.ErrorIs(t, err, countdown.ErrInvalidInput)
}

// TestReadStart_PromptOnly reads without printing the countdown.
func TestReadStart_PromptOnly(t *testing.T) {
	var out bytes.Buffer
	n, err := countdown.ReadStart(strings.NewReader("9\n"), &out, countdown.WithPrompt("> "))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "> ", out.String())
}
