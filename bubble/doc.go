// Package bubble sorts integer sequences in ascending order by repeatedly
// swapping adjacent out-of-order pairs.
//
// Algorithm
//
//	for i in [0, n):          // n outer passes
//	    for j in [0, n-1):    // adjacent pairs (j, j+1)
//	        if s[j] > s[j+1]: swap
//
// There is no early exit: every call performs exactly n·(n-1) comparisons,
// even on input that is already sorted. After outer pass k the k largest
// elements sit in their final positions. The strict ">" keeps equal elements
// in their original order, so the sort is stable.
//
// Complexity
//
//   - Time:   O(n²) comparisons, O(n²) swaps worst case.
//   - Memory: O(1) for Sort, O(n) for Sorted.
//
// Options
//
//   - WithOnCompare(fn): called with j before comparing s[j] and s[j+1].
//   - WithOnSwap(fn):    called with j after swapping s[j] and s[j+1].
//   - WithRecorder(rec): record every comparison and swap with an array snapshot.
package bubble
