package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primereport"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [n...]",
		Short: "Report whether each number is prime",
		Long: `Prints one verdict line per argument.

Example:
  primereport check 1 2 17 18`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := make([]uint64, 0, len(args))
			for _, a := range args {
				n, err := strconv.ParseUint(a, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", a, err)
				}
				ns = append(ns, n)
			}
			out := cmd.OutOrStdout()
			for _, v := range primereport.Check(ns...) {
				if v.Prime {
					fmt.Fprintf(out, "%d is prime\n", v.N)
				} else {
					fmt.Fprintf(out, "%d is not prime\n", v.N)
				}
			}
			return nil
		},
	}
}
