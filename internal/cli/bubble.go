package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/bubble"
	"github.com/katalvlaran/blastoff/demo"
	"github.com/katalvlaran/blastoff/seq"
)

func newBubbleCmd(st *state) *cobra.Command {
	var (
		stats   bool
		shuffle bool
		random  int
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "bubble [values...]",
		Short: "Bubble sort values ascending (default data [5 2 9 1 7])",
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := values(args, demo.Unsorted())
			if err != nil {
				return err
			}
			if random > 0 {
				if len(args) > 0 {
					return fmt.Errorf("bubble: --random and explicit values are exclusive")
				}
				if arr, err = seq.Random(random, random*10, seed); err != nil {
					return err
				}
			}
			if shuffle {
				seq.Shuffle(arr, seed)
			}
			st.logger.Debug("bubble sort", "len", len(arr), "shuffled", shuffle)
			s := bubble.Sort(arr)
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, arr); err != nil {
				return err
			}
			if stats {
				_, err = fmt.Fprintf(out, "passes=%d comparisons=%d swaps=%d\n", s.Passes, s.Comparisons, s.Swaps)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print pass, comparison and swap counts")
	cmd.Flags().IntVar(&random, "random", 0, "sort N deterministic random values instead")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the input before sorting")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for --random and --shuffle (0 means the default seed)")
	return cmd
}
