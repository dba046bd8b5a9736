package seq

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream number into a new seed,
// so table-driven tests can draw independent sequences from one base seed.
// SplitMix64 finalizer constants.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Random returns n integers drawn uniformly from [0, max).
// A max <= 0 yields a sequence of zeros. Returns ErrNegativeLength for n < 0.
//
// Complexity: O(n).
func Random(n, max int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	r := rngFromSeed(seed)
	out := make([]int, n)
	if max <= 0 {
		return out, nil
	}
	for i := range out {
		out[i] = r.Intn(max)
	}
	return out, nil
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, seed int64) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rngFromSeed(seed)
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
