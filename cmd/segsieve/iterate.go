package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	segsieve "github.com/pchuck/segsieve"
)

func newIterateCmd() *cobra.Command {
	var count int
	var backward bool
	cmd := &cobra.Command{
		Use:   "iterate <start>",
		Short: "Print count primes forward (or backward with --backward) from start, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			if count <= 0 {
				return fmt.Errorf("segsieve: --count must be positive, got %d", count)
			}

			it := segsieve.NewIterator(x)
			w := bufio.NewWriter(os.Stdout)
			defer w.Flush() //nolint:errcheck

			for i := 0; i < count; i++ {
				var p uint64
				var ok bool
				if backward {
					p, ok = it.Prev()
				} else {
					p, ok = it.Next()
				}
				if !ok {
					break
				}
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of primes to emit")
	cmd.Flags().BoolVar(&backward, "backward", false, "iterate backward instead of forward")
	return cmd
}
