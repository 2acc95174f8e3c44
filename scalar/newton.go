package scalar

import (
	"math"

	"github.com/btracey/roots/common"
	"github.com/btracey/roots/write"
)

// newton holds the iteration state for the trace
type newton struct {
	iter int
	x    float64
	step float64
}

func (n *newton) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Iter", Value: n.iter})
	v = append(v, &write.Value{Heading: "X", Value: n.x})
	v = append(v, &write.Value{Heading: "Step", Value: n.step})
	return v
}

// NewtonRaphson solves f(x) == 0 by Newton-Raphson iteration from the
// starting point x0, using the caller-supplied derivative df.
//
// One iteration of x <- x - f(x)/df(x) is always taken before the first
// convergence check. Convergence is declared when the change between
// successive iterates drops to the tolerance; the residual f(x) at the
// returned root is never tested (check Result.Residual by hand if a residual
// guarantee is needed). The search fails with a *common.ConvergenceError when
// the iterate is still moving after MaximumIterations steps, and with a
// *common.DerivativeError when df evaluates to exactly zero. There is no
// protection against divergence or oscillation beyond the iteration budget.
//
// A nil settings value means DefaultSettings()
func NewtonRaphson(f Objective, df Deriver, x0 float64, s *Settings) (*Result, error) {
	if s == nil {
		s = DefaultSettings()
	}

	// the iteration function g(x) for the given f(x) and f'(x)
	g := func(x float64) (float64, error) {
		d := df.Deriv(x)
		if d == 0 {
			return 0, &common.DerivativeError{At: x}
		}
		return x - f.Obj(x)/d, nil
	}

	state := &newton{x: x0, step: math.NaN()}
	h := newHelper(s, state)

	r := -1
	xr := x0
	xr1, err := g(xr)
	if err != nil {
		return h.result(xr, math.NaN(), common.DerivativeFault), err
	}
	h.addEvals(2)

	tol := &common.Toler{}
	tol.Init(s.Tolerance, math.Abs(xr1-xr))

	for !tol.Converged() && r < s.MaximumIterations {
		r++
		xr = xr1
		xr1, err = g(xr)
		if err != nil {
			return h.result(xr, math.NaN(), common.DerivativeFault), err
		}
		tol.Add(math.Abs(xr1 - xr))

		state.iter = r + 1
		state.x = xr1
		state.step = xr1 - xr
		h.iterate(2)
	}
	// The budget check runs even when the final step also met the tolerance
	if r == s.MaximumIterations {
		return h.result(xr1, math.NaN(), common.MaximumIterations),
			&common.ConvergenceError{MaxIterations: s.MaximumIterations}
	}
	return h.result(xr1, math.NaN(), common.StepConverged), nil
}
