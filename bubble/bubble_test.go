package bubble_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/blastoff/bubble"
	"github.com/katalvlaran/blastoff/search"
	"github.com/katalvlaran/blastoff/seq"
	"github.com/katalvlaran/blastoff/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSort_Demo sorts the demonstration array and checks the work counters.
func TestSort_Demo(t *testing.T) {
	arr := []int{5, 2, 9, 1, 7}
	st := bubble.Sort(arr)

	assert.Equal(t, []int{1, 2, 5, 7, 9}, arr)
	assert.Equal(t, 5, st.Passes)
	assert.Equal(t, 20, st.Comparisons, "no early exit: n*(n-1) comparisons")
	assert.Equal(t, 5, st.Swaps, "one swap per inversion")
}

// TestSort_Idempotent sorts an already sorted array: same result, full work, no swaps.
func TestSort_Idempotent(t *testing.T) {
	arr := []int{1, 2, 5, 7, 9}
	st := bubble.Sort(arr)
	assert.Equal(t, []int{1, 2, 5, 7, 9}, arr)
	assert.Equal(t, 20, st.Comparisons)
	assert.Zero(t, st.Swaps)
}

func TestSort_Small(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"nil", nil, nil},
		{"empty", []int{}, []int{}},
		{"single", []int{4}, []int{4}},
		{"pair", []int{2, 1}, []int{1, 2}},
		{"duplicates", []int{3, 1, 3, 1}, []int{1, 1, 3, 3}},
		{"negatives", []int{0, -5, 3, -1}, []int{-5, -1, 0, 3}},
		{"reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bubble.Sort(tc.in)
			assert.Equal(t, tc.want, tc.in)
		})
	}
}

// TestSort_RandomPermutation checks ascending order and permutation on random input.
func TestSort_RandomPermutation(t *testing.T) {
	for stream := uint64(0); stream < 30; stream++ {
		orig, err := seq.Random(int(stream)+1, 20, seq.DeriveSeed(3, stream))
		require.NoError(t, err)
		got := bubble.Sorted(orig)

		assert.True(t, seq.IsAscending(got))
		assert.True(t, seq.IsPermutation(orig, got))
		assert.Equal(t, got, bubble.Sorted(got), "sorting is idempotent")
	}
}

// TestSort_PassInvariant checks that after k passes the k largest elements
// occupy the last k positions in final order.
func TestSort_PassInvariant(t *testing.T) {
	arr, err := seq.Random(12, 100, 77)
	require.NoError(t, err)
	want := slices.Clone(arr)
	slices.Sort(want)
	n := len(arr)

	compares := 0
	bubble.Sort(arr, bubble.WithOnCompare(func(j int) {
		if j == 0 {
			k := compares / (n - 1)
			assert.Equal(t, want[n-k:], arr[n-k:], "after pass %d", k)
		}
		compares++
	}))
	assert.Equal(t, want, arr)
}

// TestSorted_LeavesInput verifies Sorted copies.
func TestSorted_LeavesInput(t *testing.T) {
	arr := []int{5, 2, 9, 1, 7}
	got := bubble.Sorted(arr)
	assert.Equal(t, []int{5, 2, 9, 1, 7}, arr)
	assert.Equal(t, []int{1, 2, 5, 7, 9}, got)
}

// TestSort_Hooks checks OnSwap reports adjacent exchanges.
func TestSort_Hooks(t *testing.T) {
	var swaps []int
	bubble.Sort([]int{3, 2, 1}, bubble.WithOnSwap(func(j int) {
		swaps = append(swaps, j)
	}))
	assert.Equal(t, []int{0, 1, 0}, swaps)
}

// TestSort_Recorder checks swap steps carry an array snapshot.
func TestSort_Recorder(t *testing.T) {
	rec := trace.NewRecorder("bubble")
	bubble.Sort([]int{2, 1}, bubble.WithRecorder(rec))

	steps := rec.Session().Steps
	require.Len(t, steps, 3) // pass 0: compare+swap, pass 1: compare
	assert.Equal(t, "swap", steps[1].Label)
	assert.Equal(t, []int{1, 2}, steps[1].Array)
	assert.Nil(t, steps[0].Array)
}

// TestSort_RoundTrip sorts the demo array then binary-searches it.
func TestSort_RoundTrip(t *testing.T) {
	arr := []int{5, 2, 9, 1, 7}
	bubble.Sort(arr)
	require.Equal(t, []int{1, 2, 5, 7, 9}, arr)
	assert.Equal(t, search.Found(4), search.Binary(arr, 9))
}
