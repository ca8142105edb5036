// SPDX-License-Identifier: MIT

// Command igraphctl inspects and exercises the native graph library
// binding: library discovery, version, shortest paths and a self test.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/igraphgo/config"
)

type rootFlags struct {
	cfgFile  string
	seed     uint64
	seedSet  bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:           "igraphctl",
		Short:         "Inspect and exercise the igraph binding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f.seedSet = cmd.Flags().Changed("seed")
			c, err := loadConfig(f)
			if err != nil {
				return err
			}
			return c.Apply()
		},
	}
	root.PersistentFlags().StringVar(&f.cfgFile, "config", "", "configuration file (.yaml, .yml or .toml)")
	root.PersistentFlags().Uint64Var(&f.seed, "seed", 0, "seed for native randomness")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level (overrides configuration)")

	root.AddCommand(newVersionCmd(), newDoctorCmd(), newPathCmd(), newSelftestCmd())
	return root
}

// loadConfig layers defaults, the file, the environment and the flags.
func loadConfig(f rootFlags) (config.Config, error) {
	c := config.Default()
	if f.cfgFile != "" {
		var err error
		if c, err = config.Load(f.cfgFile); err != nil {
			return c, err
		}
	}
	if err := c.ApplyEnv(nil); err != nil {
		return c, err
	}
	if f.seedSet {
		seed := f.seed
		c.Seed = &seed
	}
	if f.logLevel != "" {
		c.Log.Level = f.logLevel
	}
	return c, c.Validate()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
