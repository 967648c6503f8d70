// SPDX-License-Identifier: MIT

// Package config holds the ratgauss run configuration.
//
// Precedence, lowest first: Default(), a TOML or YAML file, RATGAUSS_*
// environment variables, command-line flags (applied by the caller).
package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/render"
)

// DefaultInput is read when no file is named.
const DefaultInput = "matrix.txt"

// Config is the complete set of knobs for one run.
type Config struct {
	// Input is the system file.
	Input string `toml:"input" yaml:"input"`
	// Output is the report format: text, json or yaml.
	Output string `toml:"output" yaml:"output"`
	// Precision is the number of decimals in approximations; negative
	// selects the %g form.
	Precision int `toml:"precision" yaml:"precision"`
	// Pivoting is "largest" or "first-nonzero".
	Pivoting string `toml:"pivoting" yaml:"pivoting"`
	// Scope is "all" (Gauss–Jordan) or "below" (row-echelon).
	Scope string `toml:"scope" yaml:"scope"`
	// Verify substitutes the solution back into the original system.
	Verify bool `toml:"verify" yaml:"verify"`
	// Color styles text headings.
	Color bool `toml:"color" yaml:"color"`
	// Matrices prints the initial and final matrices in text output.
	Matrices bool `toml:"matrices" yaml:"matrices"`

	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// Timeout bounds a run; zero disables it.
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Input:     DefaultInput,
		Output:    string(render.FormatText),
		Precision: -1,
		Pivoting:  matrix.DefaultPivoting.String(),
		Scope:     matrix.DefaultScope.String(),
		Verify:    true,
		Matrices:  true,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Validate checks every enumerated field and returns the first problem as
// ErrInvalid wrapped with the field name.
func (c Config) Validate() error {
	if c.Input == "" {
		return invalidf("input", "must not be empty")
	}
	if _, err := render.ParseFormat(c.Output); err != nil {
		return invalidf("output", "%v", err)
	}
	if _, err := matrix.ParsePivotStrategy(c.Pivoting); err != nil {
		return invalidf("pivoting", "%v", err)
	}
	if _, err := matrix.ParseScope(c.Scope); err != nil {
		return invalidf("scope", "%v", err)
	}
	if c.Precision > MaxPrecision {
		return invalidf("precision", "%d exceeds %d", c.Precision, MaxPrecision)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return invalidf("log_level", "%v", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return invalidf("log_format", "%q is not console or json", c.LogFormat)
	}
	if c.Timeout.Duration < 0 {
		return invalidf("timeout", "negative duration %s", c.Timeout)
	}

	return nil
}

// MaxPrecision bounds Precision; rationals carry at most ten significant
// integer digits, so more decimals only print zeros or repeats.
const MaxPrecision = 64

// Format returns the parsed output format. Call after Validate.
func (c Config) Format() render.Format {
	f, _ := render.ParseFormat(c.Output)
	return f
}

// EngineOptions translates Pivoting and Scope into matrix options.
// Call after Validate.
func (c Config) EngineOptions() []matrix.Option {
	p, _ := matrix.ParsePivotStrategy(c.Pivoting)
	s, _ := matrix.ParseScope(c.Scope)

	return []matrix.Option{matrix.WithPivoting(p), matrix.WithScope(s)}
}

// RenderOptions returns the text rendering options.
func (c Config) RenderOptions() render.Options {
	return render.Options{Precision: c.Precision, Color: c.Color}
}

// Duration wraps time.Duration for TOML and YAML text ("30s", "2m").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v

	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
