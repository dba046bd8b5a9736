// Package countdown counts down from a user supplied integer to one and
// then prints a terminal message.
//
// What
//
//   - Countdown(n) returns n, n-1, ..., 1. For n <= 0 it returns nothing.
//   - Run(ctx, in, out) is the console program: read one line, parse it as
//     a base-10 integer, print one line per value, then "Blast off!".
//     ReadStart and Print are its two halves, for callers that already
//     hold the start value or want to read it without printing.
//
// Errors
//
//   - ErrInvalidInput if the line is not an integer (wraps the strconv error).
//   - ErrNoInput      if in is exhausted before a line is read.
//   - ctx.Err()       if the context is cancelled between ticks.
//   - write errors from out are returned as is.
package countdown
