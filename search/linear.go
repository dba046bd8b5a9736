package search

import "github.com/katalvlaran/blastoff/trace"

// Linear returns Found(i) for the lowest i with s[i] == target, or NotFound.
// The scan short-circuits on the first match.
//
// Complexity: O(n) time, O(1) memory.
func Linear(s []int, target int, opts ...Option) Result {
	o := buildOptions(opts)

	for i := 0; i < len(s); i++ {
		o.OnProbe(i, s[i])
		o.Recorder.Record("compare", trace.Vars{"i": i, "target": target}, nil)
		if s[i] == target {
			o.Recorder.Record("found", trace.Vars{"found": i}, nil)
			return Found(i)
		}
	}
	o.Recorder.Record("not-found", trace.Vars{"i": len(s)}, nil)
	return NotFound()
}
