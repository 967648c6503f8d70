// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// Phase is the state of a System.
type Phase int

const (
	// Unreduced: the matrix is as given.
	Unreduced Phase = iota
	// Triangularized: elimination completed; ready for Solve.
	Triangularized
	// Solved: the solution vector is available.
	Solved
	// Failed: elimination aborted; the matrix is partially reduced.
	Failed
)

// String returns a lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Unreduced:
		return "unreduced"
	case Triangularized:
		return "triangularized"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// System owns an augmented matrix for the duration of one solve and walks
// it through Unreduced → Triangularized → Solved. Each phase runs to
// completion before the next can start; calls out of order return ErrPhase.
// A System is not safe for concurrent use.
type System struct {
	m     *Dense
	phase Phase
	x     []rational.Rational
}

// NewSystem takes ownership of m, which must be n×(n+1). The caller must not
// mutate m while the System is in use.
func NewSystem(m *Dense) (*System, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opSystem, err)
	}

	return &System{m: m}, nil
}

// Phase returns the current phase.
func (s *System) Phase() Phase { return s.phase }

// Size returns the number of equations.
func (s *System) Size() int { return s.m.r }

// Matrix returns the owned matrix (triangularized once that phase is done).
func (s *System) Matrix() *Dense { return s.m }

// Triangularize runs elimination. On error the phase becomes Failed.
func (s *System) Triangularize(opts ...Option) error {
	if s.phase != Unreduced {
		return matrixErrorf(opTriangularize, fmt.Errorf("phase %s: %w", s.phase, ErrPhase))
	}
	if err := Triangularize(s.m, opts...); err != nil {
		s.phase = Failed
		return err
	}
	s.phase = Triangularized

	return nil
}

// Solve back-substitutes and stores the solution.
func (s *System) Solve() ([]rational.Rational, error) {
	if s.phase != Triangularized {
		return nil, matrixErrorf(opSolve, fmt.Errorf("phase %s: %w", s.phase, ErrPhase))
	}
	x, err := Solve(s.m)
	if err != nil {
		s.phase = Failed
		return nil, err
	}
	s.x = x
	s.phase = Solved

	return s.Solution()
}

// Solution returns a copy of the solution vector.
func (s *System) Solution() ([]rational.Rational, error) {
	if s.phase != Solved {
		return nil, matrixErrorf(opSystem, fmt.Errorf("phase %s: %w", s.phase, ErrPhase))
	}
	out := make([]rational.Rational, len(s.x))
	copy(out, s.x)

	return out, nil
}
