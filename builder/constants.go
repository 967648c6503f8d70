// SPDX-License-Identifier: MIT

package builder

// Method names used to prefix errors with the constructor name.
const (
	MethodBuildSystem = "BuildSystem"
	MethodIdentity    = "Identity"
	MethodHilbert     = "Hilbert"
	MethodTridiagonal = "Tridiagonal"
	MethodRandom      = "Random"
)

const (
	// MinSize is the smallest number of equations any constructor accepts.
	MinSize = 1

	// DefaultMaxAbs bounds random integers when WithMaxAbs is not given.
	DefaultMaxAbs int32 = 9
)
