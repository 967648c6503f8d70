// SPDX-License-Identifier: MIT

package runner

import "errors"

// ErrUnknownFixture is returned by Generate for an unsupported kind.
var ErrUnknownFixture = errors.New("runner: unknown fixture")
