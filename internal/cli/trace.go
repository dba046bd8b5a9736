package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/demo"
	"github.com/katalvlaran/blastoff/trace"
)

func newTraceCmd(st *state) *cobra.Command {
	var (
		format string
		at     int
	)
	cmd := &cobra.Command{
		Use:   "trace <program>",
		Short: "Run a demonstration and print its step-by-step trace",
		Long: "Run a demonstration with a recorder attached. Without --at the full step " +
			"log is printed (--format text|json). With --at N the state after N steps is shown.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := demo.Lookup(args[0])
			if err != nil {
				return err
			}
			rec := trace.NewRecorder(p.Name)
			env := st.env(cmd)
			env.Out = io.Discard
			env.Recorder = rec
			if err := p.Run(cmd.Context(), env); err != nil {
				return err
			}
			session := rec.Session()
			st.logger.Debug("trace recorded", "id", session.ID, "steps", len(session.Steps))

			if !cmd.Flags().Changed("format") {
				format = st.cfg.Trace.Format
			}
			if at < 0 {
				return session.Write(cmd.OutOrStdout(), format)
			}
			return writeState(cmd.OutOrStdout(), session, at)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", trace.FormatText, "step log format: text or json")
	cmd.Flags().IntVar(&at, "at", -1, "show variables and output after this many steps")
	return cmd
}

// writeState replays session up to step n and prints the variables pane
// followed by the output pane.
func writeState(w io.Writer, session trace.Session, n int) error {
	p := trace.NewPlayer(session)
	for p.Position() < n && p.Forward() {
	}
	vars := p.Vars()
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "step %d/%d\n", p.Position(), len(session.Steps)); err != nil {
		return err
	}
	for _, k := range names {
		if _, err := fmt.Fprintf(w, "  %s = %d\n", k, vars[k]); err != nil {
			return err
		}
	}
	for _, line := range p.Outputs() {
		if _, err := fmt.Fprintf(w, "> %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
