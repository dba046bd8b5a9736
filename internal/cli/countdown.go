package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/countdown"
)

var errStartAndArg = errors.New("countdown: --start and a positional N are exclusive")

func newCountdownCmd(st *state) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "countdown [N]",
		Short: "Count down from N to 1, then blast off",
		Long: "Count down from N to 1. N comes from --start, a positional argument " +
			"(use `countdown -- -3` for negatives) or, when neither is given, standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []countdown.Option{
				countdown.WithPrompt(st.cfg.Countdown.Prompt),
				countdown.WithMessage(st.cfg.Countdown.Message),
			}
			n := start
			switch {
			case cmd.Flags().Changed("start"):
				if len(args) > 0 {
					return errStartAndArg
				}
			case len(args) == 1:
				var err error
				if n, err = countdown.Parse(args[0]); err != nil {
					return err
				}
			default:
				return countdown.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
			}
			st.logger.Debug("countdown", "start", n)
			return countdown.Print(cmd.Context(), n, cmd.OutOrStdout(), opts...)
		},
	}
	cmd.Flags().IntVarP(&start, "start", "n", 0, "start value (may be negative)")
	return cmd
}
