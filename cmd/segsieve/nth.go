package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	segsieve "github.com/pchuck/segsieve"
)

func newNthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nth <n> <start>",
		Short: "Find the n-th prime after start (n negative searches backward)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			start, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			p, err := segsieve.NthPrime(n, start)
			if err != nil {
				return err
			}
			fmt.Println(p)
			return nil
		},
	}
}
