// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ratgauss/builder"
	"github.com/katalvlaran/ratgauss/internal/runner"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n      int
		seed   int64
		maxAbs int32
	)
	kinds := []string{runner.FixtureIdentity, runner.FixtureHilbert, runner.FixtureTridiagonal, runner.FixtureRandom}

	cmd := &cobra.Command{
		Use:       "generate <kind>",
		Short:     "Write a test system with a known solution",
		Long:      "Write a test system with a known solution to stdout.\nKinds: " + strings.Join(kinds, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxAbs < 1 {
				return fmt.Errorf("--max must be at least 1, got %d", maxAbs)
			}
			opts := []builder.BuilderOption{builder.WithMaxAbs(maxAbs)}
			switch {
			case cmd.Flags().Changed("seed"):
				opts = append(opts, builder.WithSeed(seed))
			case args[0] == runner.FixtureRandom:
				seed = time.Now().UnixNano()
				a.logger.Info("random seed", zap.Int64("seed", seed))
				opts = append(opts, builder.WithSeed(seed))
			}
			_, err := a.runner(cmd).Generate(args[0], n, opts...)
			return err
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 3, "number of equations")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (random coefficients and solution)")
	cmd.Flags().Int32Var(&maxAbs, "max", builder.DefaultMaxAbs, "bound for random integers")

	return cmd
}
