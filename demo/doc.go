// Package demo bundles the classroom demonstrations: each Program runs one
// procedure on its fixed literal data and prints the outcome.
//
//	countdown  read N, print N..1, "Blast off!"
//	linear     [5 2 9 1 7], target 9
//	bubble     [5 2 9 1 7]
//	binary     [1 2 5 7 9], target 6 (absent)
//	roundtrip  bubble-sort [5 2 9 1 7], then binary-search 9
//
// Every program writes through Env.Out and, when Env.Recorder is set,
// mirrors each printed line into the recording.
package demo
