// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid marks a field with an unusable value.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownExtension is returned by Load and Write for files that are
	// neither .toml nor .yaml/.yml.
	ErrUnknownExtension = errors.New("config: unknown file extension")
)

func invalidf(field, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalid)
}
