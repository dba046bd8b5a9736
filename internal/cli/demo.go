package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/demo"
)

func (st *state) env(cmd *cobra.Command) demo.Env {
	return demo.Env{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Prompt:  st.cfg.Countdown.Prompt,
		Message: st.cfg.Countdown.Message,
	}
}

func newDemoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:       "demo [name|all]",
		Short:     "Run a demonstration program, or all of them",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(demo.Names(), "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "all"
			if len(args) == 1 {
				name = args[0]
			}
			env := st.env(cmd)
			if name != "all" {
				p, err := demo.Lookup(name)
				if err != nil {
					return err
				}
				return p.Run(cmd.Context(), env)
			}
			for i, p := range demo.All() {
				header := fmt.Sprintf("# %s\n", p.Title)
				if i > 0 {
					header = "\n" + header
				}
				if _, err := fmt.Fprint(env.Out, header); err != nil {
					return err
				}
				st.logger.Debug("running demo", "name", p.Name)
				if err := p.Run(cmd.Context(), env); err != nil {
					return fmt.Errorf("demo %s: %w", p.Name, err)
				}
			}
			return nil
		},
	}
}
