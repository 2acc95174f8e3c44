package scalar

import (
	"math"

	"github.com/btracey/roots/common"
	"github.com/btracey/roots/write"
)

// bisect holds the bracket state for the trace
type bisect struct {
	iter int
	a, b float64
	c    float64
	fc   float64
}

func (s *bisect) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Iter", Value: s.iter})
	v = append(v, &write.Value{Heading: "A", Value: s.a})
	v = append(v, &write.Value{Heading: "B", Value: s.b})
	v = append(v, &write.Value{Heading: "X", Value: s.c})
	v = append(v, &write.Value{Heading: "F(X)", Value: s.fc})
	return v
}

// Bisection solves f(x) == 0 by interval halving over the bracket [a, b].
// f(a) and f(b) must differ in sign; this is checked inside the loop rather
// than up front, so a bracket that converges immediately is never validated.
//
// Convergence is declared when |f(c)| at the midpoint drops to the tolerance,
// or at once when f(c) is exactly zero (exact floating-point equality). The
// exact-zero exit does not count against the iteration budget. Otherwise the
// search fails with a *common.ConvergenceError when the budget was used up,
// or a *common.InvalidBracketError when the endpoints do not straddle a sign
// change. Midpoints where f(a)*f(c) is exactly zero are treated as bracketing
// the root to the right.
//
// A nil settings value means DefaultSettings()
func Bisection(f Objective, a, b float64, s *Settings) (*Result, error) {
	if s == nil {
		s = DefaultSettings()
	}

	state := &bisect{a: a, b: b, fc: math.NaN()}
	h := newHelper(s, state)

	its := 0
	c := (a + b) / 2
	fc := f.Obj(c)
	h.addEvals(1)

	tol := &common.Toler{}
	tol.Init(s.Tolerance, math.Abs(fc))

	for !tol.Converged() {
		// The bracket is validated lazily, once per pass. After the first
		// pass the check is redundant because the updates below preserve the
		// sign change, but an impure objective can still trip it
		fa := f.Obj(a)
		fb := f.Obj(b)
		h.addEvals(2)
		if fa*fb >= 0 {
			return h.result(math.NaN(), math.NaN(), common.InvalidBracket),
				&common.InvalidBracketError{A: a, B: b, FA: fa, FB: fb}
		}

		c = (a + b) / 2
		fmid := f.Obj(c)
		h.addEvals(1)
		if fmid == 0 {
			// Exact root. This pass is not counted against the budget, so a
			// zero budget still succeeds on this path
			return h.result(c, 0, common.ExactRoot), nil
		}
		if fa*fmid < 0 {
			b = c
		} else {
			// Root in the right half. A product of exactly zero lands here
			a = c
		}
		c = (a + b) / 2
		its++

		state.iter = its
		state.a = a
		state.b = b
		state.c = c
		state.fc = fmid
		h.iterate(0)

		fc = f.Obj(c)
		h.addEvals(1)
		tol.Add(math.Abs(fc))
	}
	if its >= s.MaximumIterations {
		return h.result(c, fc, common.MaximumIterations),
			&common.ConvergenceError{MaxIterations: s.MaximumIterations}
	}
	return h.result(c, fc, common.ResidualConverged), nil
}
