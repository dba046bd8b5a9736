// Package seq holds small helpers for the integer sequences every other
// package in blastoff operates on.
//
// What
//
//   - Deterministic random sequences (Random, Shuffle) for tests, benchmarks
//     and the CLI. The same seed yields the same sequence on every platform.
//   - Predicates used to state sort and search invariants:
//     IsAscending, IsPermutation.
//   - Clone and ParseInts for callers that build sequences from text.
//
// Determinism
//
//	Seed 0 is mapped to a fixed default seed; no helper ever reads the clock.
//
// Complexity
//
//   - Random, Shuffle, Clone, ParseInts, IsAscending: O(n).
//   - IsPermutation: O(n) time, O(n) extra memory.
package seq
