// SPDX-License-Identifier: MIT

// Package runner drives one ratgauss run: read a system, reduce it, report.
// It is the only place that logs; the library packages return errors.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ratgauss/builder"
	"github.com/katalvlaran/ratgauss/config"
	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/render"
	"github.com/katalvlaran/ratgauss/textio"
)

// Runner holds the collaborators of a run. The zero value is not usable;
// build one with New.
type Runner struct {
	Logger *zap.Logger
	Config config.Config
	Out    io.Writer

	// NewRunID returns the identifier attached to logs and reports.
	NewRunID func() string
}

// New returns a Runner writing reports to out. A nil logger is replaced by
// zap.NewNop.
func New(logger *zap.Logger, cfg config.Config, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{Logger: logger, Config: cfg, Out: out, NewRunID: uuid.NewString}
}

// run carries per-invocation state.
type run struct {
	*Runner
	id    string
	log   *zap.Logger
	start time.Time
	text  bool
	ropts render.Options
}

func (r *Runner) begin(op, path string) *run {
	id := r.NewRunID()
	f := r.Config.Format()

	return &run{
		Runner: r,
		id:     id,
		log:    r.Logger.With(zap.String("run_id", id), zap.String("op", op), zap.String("input", path)),
		start:  time.Now(),
		text:   f == render.FormatText,
		ropts:  r.Config.RenderOptions(),
	}
}

// fail logs err and returns it wrapped with the operation.
func (x *run) fail(stage string, err error) error {
	x.log.Error("run failed", zap.String("stage", stage), zap.Error(err))
	return fmt.Errorf("%s: %w", stage, err)
}

func (x *run) read(ctx context.Context, path string) (*matrix.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, x.fail("read", err)
	}
	m, err := textio.ReadFile(path)
	if err != nil {
		return nil, x.fail("read", err)
	}
	x.log.Info("system read", zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return m, nil
}

// show prints a titled matrix in text mode when matrices are enabled.
func (x *run) show(title string, m *matrix.Dense) error {
	if !x.text || !x.Config.Matrices {
		return nil
	}
	if err := render.Heading(x.Out, title, x.ropts); err != nil {
		return err
	}

	return render.Matrix(x.Out, m)
}

func (x *run) report(rep *render.Report) error {
	rep.RunID = x.id
	if err := render.Encode(x.Out, x.Config.Format(), rep, x.ropts); err != nil {
		return x.fail("report", err)
	}
	x.log.Info("run finished", zap.Duration("elapsed", time.Since(x.start)))

	return nil
}

// Solve reads the augmented system at path, triangularizes and solves it,
// optionally verifies the solution against the untouched input and writes
// the report.
//
// Errors:
//   - textio errors for unreadable input.
//   - matrix.ErrNotAugmented, matrix.ErrSingular, rational.ErrOverflow.
//   - matrix.ErrNotSolution if verification fails.
//   - ctx.Err() when ctx ends between stages.
func (r *Runner) Solve(ctx context.Context, path string) (*render.Report, error) {
	x := r.begin("solve", path)
	m, err := x.read(ctx, path)
	if err != nil {
		return nil, err
	}
	orig := m.Clone()

	sys, err := matrix.NewSystem(m)
	if err != nil {
		return nil, x.fail("solve", err)
	}
	if err = x.show("Initial matrix:", m); err != nil {
		return nil, x.fail("render", err)
	}

	opts := append(r.Config.EngineOptions(), matrix.WithPivotHook(func(ev matrix.PivotEvent) {
		x.log.Debug("pivot",
			zap.Int("step", ev.Step),
			zap.Int("from_row", ev.From),
			zap.Bool("swapped", ev.Swapped),
			zap.Stringer("pivot", ev.Pivot),
			zap.Int("cleared", ev.Cleared))
	}))
	if err = sys.Triangularize(opts...); err != nil {
		return nil, x.fail("triangularize", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, x.fail("triangularize", err)
	}
	if err = x.show("Final matrix:", sys.Matrix()); err != nil {
		return nil, x.fail("render", err)
	}

	xs, err := sys.Solve()
	if err != nil {
		return nil, x.fail("solve", err)
	}
	x.log.Info("system solved", zap.Int("variables", len(xs)))

	rep := &render.Report{
		Input:     path,
		Size:      sys.Size(),
		Pivoting:  r.Config.Pivoting,
		Scope:     r.Config.Scope,
		Variables: render.Variables(xs, r.Config.Precision),
	}
	if r.Config.Verify {
		ok := true
		if err = matrix.Verify(orig, xs); err != nil {
			ok = false
			rep.Verified = &ok
			_ = x.report(rep)
			return rep, x.fail("verify", err)
		}
		rep.Verified = &ok
	}

	return rep, x.report(rep)
}

// coefficients accepts either a square matrix or an augmented one, whose
// right-hand side is dropped.
func coefficients(m *matrix.Dense) (*matrix.Dense, error) {
	if m.IsAugmented() {
		return matrix.Coefficients(m)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}

	return m, nil
}

// Determinant reports det(A) for the system or square matrix at path.
func (r *Runner) Determinant(ctx context.Context, path string) (*render.Report, error) {
	x := r.begin("det", path)
	m, err := x.read(ctx, path)
	if err != nil {
		return nil, err
	}
	a, err := coefficients(m)
	if err != nil {
		return nil, x.fail("det", err)
	}
	if err = x.show("Matrix:", a); err != nil {
		return nil, x.fail("render", err)
	}
	det, err := matrix.Determinant(a)
	if err != nil {
		return nil, x.fail("det", err)
	}
	x.log.Info("determinant computed", zap.Stringer("det", det))

	rep := &render.Report{Input: path, Size: a.Rows(), Determinant: &det}

	return rep, x.report(rep)
}

// Inverse reports A⁻¹ for the system or square matrix at path.
func (r *Runner) Inverse(ctx context.Context, path string) (*render.Report, error) {
	x := r.begin("inverse", path)
	m, err := x.read(ctx, path)
	if err != nil {
		return nil, err
	}
	a, err := coefficients(m)
	if err != nil {
		return nil, x.fail("inverse", err)
	}
	if err = x.show("Matrix:", a); err != nil {
		return nil, x.fail("render", err)
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, x.fail("inverse", err)
	}

	rep := &render.Report{Input: path, Size: a.Rows()}
	if err = rep.SetInverse(inv); err != nil {
		return nil, x.fail("inverse", err)
	}

	return rep, x.report(rep)
}

// Fixture names accepted by Generate.
const (
	FixtureIdentity    = "identity"
	FixtureHilbert     = "hilbert"
	FixtureTridiagonal = "tridiagonal"
	FixtureRandom      = "random"
)

// Generate writes a fixture system of size n to Out in the input format.
func (r *Runner) Generate(kind string, n int, opts ...builder.BuilderOption) (*builder.Fixture, error) {
	log := r.Logger.With(zap.String("op", "generate"), zap.String("kind", kind), zap.Int("n", n))

	var ctor builder.Constructor
	switch kind {
	case FixtureIdentity:
		ctor = builder.Identity(n)
	case FixtureHilbert:
		ctor = builder.Hilbert(n)
	case FixtureTridiagonal:
		ctor = builder.Tridiagonal(n)
	case FixtureRandom:
		ctor = builder.Random(n)
	default:
		return nil, fmt.Errorf("generate: %q: %w", kind, ErrUnknownFixture)
	}

	fx, err := builder.BuildSystem(ctor, opts...)
	if err != nil {
		log.Error("generate failed", zap.Error(err))
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err = textio.WriteSystem(r.Out, fx.Aug); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log.Info("fixture written", zap.Stringers("solution", fx.Solution))

	return fx, nil
}
