package main

import (
	"strconv"

	"github.com/spf13/viper"
)

// parseRange parses the two positional <start> <stop> arguments every
// subcommand takes.
func parseRange(startArg, stopArg string) (start, stop uint64, err error) {
	start, err = strconv.ParseUint(startArg, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	stop, err = strconv.ParseUint(stopArg, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return start, stop, nil
}

func progressEnabled() bool {
	return viper.GetBool("progress") && !viper.GetBool("quiet")
}
