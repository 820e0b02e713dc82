// Command segsieve counts, prints, and searches primes and prime
// k-tuplets over 64-bit intervals using a segmented wheel sieve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	segsieve "github.com/pchuck/segsieve"
)

var (
	flagSieveSizeKiB int
	flagNumThreads   int
	flagQuiet        bool
	flagProgress     bool
	flagDebug        bool
	cfgFile          string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "segsieve",
		Short:         "Segmented wheel sieve: count, print and search primes and prime k-tuplets",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.segsieve.yaml)")
	root.PersistentFlags().IntVar(&flagSieveSizeKiB, "sieve-size", 0, "segment size in KiB, clamped to a power of two in [8, 4096] (0 = auto)")
	root.PersistentFlags().IntVar(&flagNumThreads, "threads", 0, "number of worker threads (0 = hardware thread count)")
	root.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress progress and summary output")
	root.PersistentFlags().BoolVar(&flagProgress, "progress", true, "show a progress bar on stderr when attached to a terminal")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug-level structured logging")

	viper.BindPFlag("sieve_size", root.PersistentFlags().Lookup("sieve-size")) //nolint:errcheck
	viper.BindPFlag("threads", root.PersistentFlags().Lookup("threads"))      //nolint:errcheck
	viper.BindPFlag("quiet", root.PersistentFlags().Lookup("quiet"))          //nolint:errcheck
	viper.BindPFlag("progress", root.PersistentFlags().Lookup("progress"))    //nolint:errcheck
	viper.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))          //nolint:errcheck

	root.AddCommand(newCountCmd())
	root.AddCommand(newTupletsCmd())
	root.AddCommand(newPrintCmd())
	root.AddCommand(newNthCmd())
	root.AddCommand(newIterateCmd())

	return root
}

// initConfig loads $HOME/.segsieve.yaml (or --config) plus SEGSIEVE_*
// environment overrides via viper, since the CLI has persistent flags
// shared across five subcommands.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".segsieve")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SEGSIEVE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// opts builds the dispatcher Options shared by every subcommand from
// the resolved persistent flags/config, and a progress handle whose
// attach method each subcommand uses to set opts.Progress.
func opts() (segsieve.Options, *progressHandle) {
	o := segsieve.Options{
		NumThreads:   viper.GetInt("threads"),
		SieveSizeKiB: viper.GetInt("sieve_size"),
		Debug:        viper.GetBool("debug"),
	}
	return o, newProgressHandle()
}
