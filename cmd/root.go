// SPDX-License-Identifier: MIT

// Package cmd wires the ratgauss command line.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ratgauss/config"
	"github.com/katalvlaran/ratgauss/internal/runner"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	// flag mirrors of config fields; applied only when changed
	output    string
	precision int
	pivoting  string
	scope     string
	noVerify  bool
	color     bool
	matrices  bool
	logFormat string

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ratgauss",
		Short: "ratgauss - exact Gaussian elimination over rational numbers",
		Long: `ratgauss solves n×n linear systems exactly. Every coefficient is a
fraction with 32-bit terms; arithmetic that would not fit is reported as an
overflow instead of being rounded.

Input is one equation per line: n coefficients followed by the right-hand
side, separated by blanks. '#' starts a comment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every pivot step (debug level)")
	pf.StringVarP(&a.output, "output", "o", "text", "report format: text, json or yaml")
	pf.IntVarP(&a.precision, "precision", "p", -1, "decimals in approximations; negative for %g")
	pf.StringVar(&a.pivoting, "pivoting", "largest", "pivot strategy: largest or first-nonzero")
	pf.StringVar(&a.scope, "scope", "all", "elimination scope: all (Gauss-Jordan) or below")
	pf.BoolVar(&a.noVerify, "no-verify", false, "skip substituting the solution back")
	pf.BoolVar(&a.color, "color", false, "style headings with ANSI colors")
	pf.BoolVar(&a.matrices, "matrices", true, "print the initial and final matrices in text mode")
	pf.StringVar(&a.logFormat, "log-format", "console", "log encoding: console or json")

	root.AddCommand(
		newSolveCmd(a),
		newDetCmd(a),
		newInverseCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup resolves the configuration (defaults, file, environment, flags) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("pivoting") {
		cfg.Pivoting = a.pivoting
	}
	if flags.Changed("scope") {
		cfg.Scope = a.scope
	}
	if flags.Changed("no-verify") {
		cfg.Verify = !a.noVerify
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("matrices") {
		cfg.Matrices = a.matrices
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// runner returns a Runner writing to the command's output.
func (a *app) runner(cmd *cobra.Command) *runner.Runner {
	return runner.New(a.logger, a.cfg, cmd.OutOrStdout())
}

// runContext derives the run context, bounded by the configured timeout.
func (a *app) runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout.Duration > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout.Duration)
	}

	return context.WithCancel(ctx)
}

// inputPath picks the positional argument or the configured input.
func (a *app) inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return a.cfg.Input
}
