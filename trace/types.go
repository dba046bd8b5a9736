package trace

import (
	"errors"
	"maps"
	"slices"
)

// ErrBadFormat is returned when a session cannot be decoded or an output
// format name is not recognized.
var ErrBadFormat = errors.New("trace: bad format")

// Format names accepted by Session.Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Vars is a snapshot of named integer variables at one step.
type Vars map[string]int

// Step is one recorded point of execution.
type Step struct {
	Seq    int    `json:"seq"`
	Label  string `json:"label"`
	Vars   Vars   `json:"vars,omitempty"`
	Array  []int  `json:"array,omitempty"`
	Output string `json:"output,omitempty"`
}

// Printed reports whether the step produced a console line.
func (s Step) Printed() bool { return s.Label == LabelPrint }

// LabelPrint marks steps created by Recorder.Print.
const LabelPrint = "print"

// Session is a finished recording.
type Session struct {
	ID      string `json:"id"`
	Program string `json:"program"`
	Steps   []Step `json:"steps"`
}

// VarNames returns the sorted set of variable names seen across all steps.
func (s Session) VarNames() []string {
	seen := make(map[string]struct{})
	for _, st := range s.Steps {
		for k := range st.Vars {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
