// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only view of the internal Options to
// matrix_test without widening the production API.

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	Pivoting PivotStrategy
	Scope    Scope
	HasHook  bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Pivoting: o.pivoting, Scope: o.scope, HasHook: o.onPivot != nil}
}

// ScaleRow_TestOnly and SubtractRow_TestOnly expose the row kernels.
var (
	ScaleRow_TestOnly    = scaleRow
	SubtractRow_TestOnly = subtractRow
)
