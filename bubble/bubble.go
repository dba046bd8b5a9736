package bubble

import (
	"github.com/katalvlaran/blastoff/seq"
	"github.com/katalvlaran/blastoff/trace"
)

// Sort orders s ascending in place and reports the work done.
// A nil or single-element s is left untouched (n passes, zero comparisons).
func Sort(s []int, opts ...Option) Stats {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var st Stats
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			o.OnCompare(j)
			o.Recorder.Record("compare", trace.Vars{"i": i, "j": j}, nil)
			st.Comparisons++
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				st.Swaps++
				o.OnSwap(j)
				o.Recorder.Record("swap", trace.Vars{"i": i, "j": j}, s)
			}
		}
		st.Passes++
	}
	return st
}

// Sorted returns an ascending copy of s, leaving s unchanged.
func Sorted(s []int, opts ...Option) []int {
	out := seq.Clone(s)
	Sort(out, opts...)
	return out
}
