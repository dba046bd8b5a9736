package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blastoff/demo"
	"github.com/katalvlaran/blastoff/search"
	"github.com/katalvlaran/blastoff/seq"
)

// values parses positional arguments, falling back to def when none are given.
func values(args []string, def []int) ([]int, error) {
	if len(args) == 0 {
		return def, nil
	}
	return seq.ParseInts(args)
}

func newLinearCmd(st *state) *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "linear [values...]",
		Short: "Linear search for --target (default data [5 2 9 1 7])",
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := values(args, demo.Unsorted())
			if err != nil {
				return err
			}
			res := search.Linear(arr, target)
			st.logger.Debug("linear search", "len", len(arr), "target", target, "result", res.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), demo.FormatResult(target, res))
			return err
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 9, "value to search for")
	return cmd
}

func newBinaryCmd(st *state) *cobra.Command {
	var (
		target int
		check  bool
	)
	cmd := &cobra.Command{
		Use:   "binary [values...]",
		Short: "Binary search for --target in ascending values (default data [1 2 5 7 9])",
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := values(args, demo.Sorted())
			if err != nil {
				return err
			}
			if check {
				if err := search.CheckSorted(arr); err != nil {
					return err
				}
			}
			res := search.Binary(arr, target)
			st.logger.Debug("binary search", "len", len(arr), "target", target, "result", res.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), demo.FormatResult(target, res))
			return err
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 6, "value to search for")
	cmd.Flags().BoolVar(&check, "check", false, "reject input that is not sorted ascending")
	return cmd
}
