/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"os"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seipan/treebench/bench"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var (
		dump     bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "treebench",
		Short: "Measure an unbalanced binary search tree against other ordered containers",
		Long: `treebench inserts a shuffled set of unique integer keys into every selected
engine, looks each of them up, deletes one key and checks that exactly that
key disappeared. Each engine is rebuilt for every iteration; the report shows
the mean and standard deviation of every phase.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, logLevel)
			if err != nil {
				return err
			}

			runner, err := bench.NewRunner(cfg, logger)
			if err != nil {
				return err
			}
			if dump {
				if err := runner.DumpTree(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout())
		},
	}

	registerFlags(cmd.Flags(), cfg)
	cmd.Flags().BoolVar(&dump, "print", false, "print the bstree built from the dataset before measuring")
	cmd.Flags().StringVar(&logLevel, "log-level", log.InfoLevel.String(), "log level (panic, fatal, error, warn, info, debug, trace)")
	return cmd
}

func registerFlags(flags *pflag.FlagSet, cfg *bench.Config) {
	flags.IntVarP(&cfg.Keys, "keys", "N", cfg.Keys, "number of keys in the dataset")
	flags.IntVarP(&cfg.Iterations, "iterations", "i", cfg.Iterations, "number of times each engine is measured")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the dataset permutation")
	flags.StringSliceVarP(&cfg.Engines, "engines", "e", cfg.Engines, "engines to measure, in report order")
	flags.IntVarP(&cfg.DeleteKey, "delete-key", "d", cfg.DeleteKey, "key deleted after the lookup sweep")
	flags.IntVar(&cfg.BTreeDegree, "btree-degree", cfg.BTreeDegree, "degree of the btree engine")
	flags.BoolVar(&cfg.Validate, "validate", cfg.Validate, "re-check the bstree invariants after every mutation")
}

func newLogger(cmd *cobra.Command, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, merry.Wrap(err).WithValue("flag", "log-level")
	}
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(lvl)
	return logger, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(merry.Details(err))
		os.Exit(1)
	}
}
