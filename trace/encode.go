package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteJSON writes the session as indented JSON.
func (s Session) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// ReadJSON decodes a session written by WriteJSON.
func ReadJSON(r io.Reader) (Session, error) {
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	return s, nil
}

// WriteText writes one line per step:
//
//	#3 compare i=0 j=2 [2 5 9 1 7]
//	#4 print > found 9 at index 2
func (s Session) WriteText(w io.Writer) error {
	names := s.VarNames()
	for _, st := range s.Steps {
		var b strings.Builder
		fmt.Fprintf(&b, "#%d %s", st.Seq, st.Label)
		for _, n := range names {
			if v, ok := st.Vars[n]; ok {
				fmt.Fprintf(&b, " %s=%d", n, v)
			}
		}
		if st.Array != nil {
			fmt.Fprintf(&b, " %v", st.Array)
		}
		if st.Printed() {
			fmt.Fprintf(&b, " > %s", st.Output)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Write dispatches on format (FormatText or FormatJSON).
func (s Session) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return s.WriteText(w)
	case FormatJSON:
		return s.WriteJSON(w)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrBadFormat, format)
	}
}
