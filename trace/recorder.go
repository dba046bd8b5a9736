package trace

import (
	"maps"
	"slices"

	"github.com/rs/xid"
)

// Recorder accumulates steps for one program run. Not safe for concurrent use.
type Recorder struct {
	id      string
	program string
	steps   []Step
}

// NewRecorder starts an empty recording with a fresh xid session ID.
func NewRecorder(program string) *Recorder {
	return &Recorder{
		id:      xid.New().String(),
		program: program,
	}
}

// Record appends a step. vars and arr are copied, so callers may keep
// mutating their own state.
func (r *Recorder) Record(label string, vars Vars, arr []int) {
	if r == nil {
		return
	}
	st := Step{Seq: len(r.steps), Label: label}
	if len(vars) > 0 {
		st.Vars = maps.Clone(vars)
	}
	if arr != nil {
		st.Array = slices.Clone(arr)
	}
	r.steps = append(r.steps, st)
}

// Print records a console line.
func (r *Recorder) Print(line string) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, Step{Seq: len(r.steps), Label: LabelPrint, Output: line})
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.steps)
}

// Session returns a snapshot of the recording so far.
func (r *Recorder) Session() Session {
	if r == nil {
		return Session{}
	}
	return Session{
		ID:      r.id,
		Program: r.program,
		Steps:   slices.Clone(r.steps),
	}
}
