// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratgauss/config"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve an augmented system (default " + config.DefaultInput + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.runContext(cmd)
			defer cancel()
			_, err := a.runner(cmd).Solve(ctx, a.inputPath(args))
			return err
		},
	}
}

func newDetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "det [file]",
		Aliases: []string{"determinant"},
		Short:   "Print the exact determinant of the coefficient matrix",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.runContext(cmd)
			defer cancel()
			_, err := a.runner(cmd).Determinant(ctx, a.inputPath(args))
			return err
		},
	}
}

func newInverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "inverse [file]",
		Aliases: []string{"inv"},
		Short:   "Print the exact inverse of the coefficient matrix",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.runContext(cmd)
			defer cancel()
			_, err := a.runner(cmd).Inverse(ctx, a.inputPath(args))
			return err
		},
	}
}
