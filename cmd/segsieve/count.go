package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	segsieve "github.com/pchuck/segsieve"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <start> <stop>",
		Short: "Count primes in [start, stop]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, stop, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			o, ph := opts()
			o.Progress = ph.attach(start, stop, "Counting primes", progressEnabled())

			t0 := time.Now()
			n, err := segsieve.CountPrimesOpts(start, stop, o)
			ph.finish()
			if err != nil {
				return err
			}

			elapsed := time.Since(t0)
			if viper.GetBool("quiet") {
				fmt.Println(n)
				return nil
			}
			rate := float64(n) / elapsed.Seconds()
			fmt.Printf("Primes in [%s, %s]: %s\n", strconv.FormatUint(start, 10), strconv.FormatUint(stop, 10), formatCount(n))
			fmt.Printf("Done in %.3fs (%s primes/s).\n", elapsed.Seconds(), formatRate(rate))
			return nil
		},
	}
}
