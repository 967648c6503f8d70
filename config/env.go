// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RATGAUSS_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error { return c.ApplyLookup(os.LookupEnv) }

// ApplyLookup overrides fields from lookup, using EnvPrefix plus the upper
// case key (RATGAUSS_OUTPUT, RATGAUSS_LOG_LEVEL, ...). Malformed numbers,
// booleans or durations return ErrInvalid.
func (c *Config) ApplyLookup(lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("INPUT", &c.Input)
	str("OUTPUT", &c.Output)
	str("PIVOTING", &c.Pivoting)
	str("SCOPE", &c.Scope)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if v, ok := lookup(EnvPrefix + "PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalidf("RATGAUSS_PRECISION", "%q", v)
		}
		c.Precision = n
	}
	for key, dst := range map[string]*bool{"VERIFY": &c.Verify, "COLOR": &c.Color, "MATRICES": &c.Matrices} {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return invalidf(EnvPrefix+key, "%q", v)
			}
			*dst = b
		}
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		if err := c.Timeout.UnmarshalText([]byte(v)); err != nil {
			return invalidf("RATGAUSS_TIMEOUT", "%v", err)
		}
	}

	return nil
}
