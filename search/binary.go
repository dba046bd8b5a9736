package search

import "github.com/katalvlaran/blastoff/trace"

// Binary searches the ascending sequence s for target.
//
// Algorithm:
//  1. low, high = 0, len(s)-1
//  2. while low <= high:
//     mid = (low+high)/2
//     s[mid] == target → Found(mid)
//     s[mid] <  target → low = mid+1
//     otherwise        → high = mid-1
//  3. NotFound
//
// mid is computed as low+(high-low)/2, which equals (low+high)/2 for the
// non-negative bounds used here without risking overflow.
//
// Complexity: O(log n) time, O(1) memory.
func Binary(s []int, target int, opts ...Option) Result {
	o := buildOptions(opts)

	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		o.OnProbe(mid, s[mid])
		o.Recorder.Record("probe", trace.Vars{"low": low, "high": high, "mid": mid, "target": target}, nil)

		switch {
		case s[mid] == target:
			o.Recorder.Record("found", trace.Vars{"found": mid}, nil)
			return Found(mid)
		case s[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	o.Recorder.Record("not-found", trace.Vars{"low": low, "high": high}, nil)
	return NotFound()
}
