package main

import (
	"github.com/spf13/cobra"

	segsieve "github.com/pchuck/segsieve"
)

func newPrintCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "print <start> <stop>",
		Short: "Print one prime per line, or one k-tuplet per line with --k",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, stop, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}
			o, ph := opts()
			if k == 0 {
				o.Progress = ph.attach(start, stop, "Printing primes", progressEnabled())
				err = segsieve.PrintPrimes(start, stop, o)
			} else {
				o.Progress = ph.attach(start, stop, "Printing tuplets", progressEnabled())
				err = segsieve.PrintTupletK(start, stop, k, o)
			}
			ph.finish()
			return err
		},
	}
	cmd.Flags().IntVar(&k, "k", 0, "print k-tuplets instead of primes, 2..7")
	return cmd
}
