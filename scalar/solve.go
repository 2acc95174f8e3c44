package scalar

import (
	"errors"

	"github.com/btracey/roots/common"
	"github.com/btracey/roots/write"
)

// Solve finds a root of f, trying Newton-Raphson iteration from x0 first and
// falling back to bisection over [x0, x1] when Newton runs out of
// iterations. x0 serves both as Newton's starting point and as the left end
// of the bisection bracket.
//
// Only a *common.ConvergenceError from Newton triggers the fallback; a
// *common.DerivativeError propagates immediately. If the fallback bracket
// does not straddle a sign change, the returned Result carries the
// InvalidBracket status with a NaN root alongside the bracket error, so the
// no-solution case cannot be mistaken for success. A convergence failure of
// the bisection fallback itself is not treated as a stage outcome: it
// propagates with no notice.
//
// Stage notices are written to the notice writers in s.Writing; with nil
// settings they print on standard output (see DefaultSolveSettings)
func Solve(f Objective, df Deriver, x0, x1 float64, s *SolveSettings) (*Result, error) {
	if s == nil {
		s = DefaultSolveSettings()
	}

	write.Notice(s.Writing, "Trying Newton's method")
	res, err := NewtonRaphson(f, df, x0, s.newtonSettings())
	if err == nil {
		write.Notice(s.Writing, "Newton worked")
		return res, nil
	}
	var cerr *common.ConvergenceError
	if !errors.As(err, &cerr) {
		// Arithmetic faults are not recovered from
		return res, err
	}
	write.Notice(s.Writing, "Newton did not work")

	write.Notice(s.Writing, "Trying bisection method")
	res, err = Bisection(f, x0, x1, s.bisectionSettings())
	if err == nil {
		write.Notice(s.Writing, "Bisection worked")
		return res, nil
	}
	var berr *common.InvalidBracketError
	if errors.As(err, &berr) {
		write.Notice(s.Writing, "Bisection did not work")
		return res, err
	}
	// Bisection's own convergence failure gets no notice
	return res, err
}
