// Package trace records the execution of the blastoff procedures step by
// step and replays the recording forward and backward.
//
// What
//
//   - Recorder: collects Steps while an algorithm runs. Each Step carries a
//     label ("compare", "swap", "probe", ...), a snapshot of the named loop
//     variables and, for sorts, a copy of the array.
//   - Player: a cursor over a finished Session. Forward/Back move one step,
//     ToStart/ToEnd jump, Outputs returns the lines printed so far.
//   - Session encoding: WriteJSON/ReadJSON and a plain WriteText listing.
//
// Nil recorder
//
//	Every Recorder method is a no-op on a nil receiver. Algorithms call the
//	recorder unconditionally; callers that do not want a trace pass nothing.
//
// Usage
//
//	rec := trace.NewRecorder("linear")
//	res := search.Linear(arr, 9, search.WithRecorder(rec))
//	p := trace.NewPlayer(rec.Session())
//	for p.Forward() {
//	    step, _ := p.Current()
//	    fmt.Println(step.Label, step.Vars)
//	}
package trace
