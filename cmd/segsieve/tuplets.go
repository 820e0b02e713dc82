package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	segsieve "github.com/pchuck/segsieve"
)

func newTupletsCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "tuplets <start> <stop>",
		Short: "Count prime k-tuplets in [start, stop]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if k < 2 || k > 7 {
				return fmt.Errorf("segsieve: --k must be in 2..7, got %d", k)
			}
			start, stop, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			o, ph := opts()
			o.Progress = ph.attach(start, stop, fmt.Sprintf("Counting %d-tuplets", k), progressEnabled())

			t0 := time.Now()
			n, err := segsieve.Dispatch(start, stop, o)
			ph.finish()
			if err != nil {
				return err
			}

			elapsed := time.Since(t0)
			count := n.Tuplets[k-2]
			if viper.GetBool("quiet") {
				fmt.Println(count)
				return nil
			}
			rate := float64(count) / elapsed.Seconds()
			fmt.Printf("%d-tuplets in [%d, %d]: %s\n", k, start, stop, formatCount(count))
			fmt.Printf("Done in %.3fs (%s tuplets/s).\n", elapsed.Seconds(), formatRate(rate))
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 2, "tuplet size, 2..7")
	return cmd
}
