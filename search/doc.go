// Package search locates a target value in an integer sequence.
//
// What
//
//   - Linear: scans front to back and stops at the first match, so the
//     returned index is the lowest one holding the target. O(n).
//   - Binary: halves the closed interval [low, high] of an ascending
//     sequence until the target is hit or low > high. O(log n).
//   - Both return a Result, which is either Found(index) or NotFound().
//     Absence is a value, never an error.
//
// Preconditions
//
//	Binary requires ascending input and does not check it. Call CheckSorted
//	first when the input is untrusted; on unsorted input Binary still
//	terminates but its answer is meaningless.
//
// Options
//
//   - WithOnProbe(fn): called with (index, value) for every element examined.
//   - WithRecorder(rec): record every probe into a trace.Recorder.
//
// Usage
//
//	res := search.Linear([]int{5, 2, 9, 1, 7}, 9)
//	if i, ok := res.Index(); ok {
//	    fmt.Println("found at", i) // found at 2
//	}
package search
