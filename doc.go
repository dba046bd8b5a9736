// Package blastoff collects four introductory procedures as small,
// dependency-light Go packages, plus the tooling to watch them run.
//
// 🚀 What is inside?
//
//	countdown/    count down from N to 1, then "Blast off!"
//	search/       Linear and Binary search returning Found(i) or NotFound()
//	bubble/       in-place bubble sort, full n passes, with work counters
//	trace/        record every step of a run and replay it forward and back
//	seq/          deterministic random sequences and order predicates
//	demo/         the classroom programs on their literal data
//	cmd/blastoff  CLI over all of the above
//
// ✨ Conventions
//
//   - Functional options (WithOnProbe, WithOnSwap, WithRecorder…) on every
//     algorithm; hooks default to no-ops.
//   - Sentinel errors per package, wrapped with %w and checked with errors.Is.
//   - Absence is a value: a search that misses returns NotFound(), not an error.
//   - No package logs or panics; only the CLI logs, through log/slog.
//
// Quick example:
//
//	arr := []int{5, 2, 9, 1, 7}
//	bubble.Sort(arr)               // [1 2 5 7 9]
//	res := search.Binary(arr, 9)   // Found(4)
//
//	go install github.com/katalvlaran/blastoff/cmd/blastoff@latest
//	blastoff demo all
package blastoff
