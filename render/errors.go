// SPDX-License-Identifier: MIT

package render

import "errors"

// ErrUnknownFormat is returned by ParseFormat and Encode for an unsupported
// output format.
var ErrUnknownFormat = errors.New("render: unknown format")
