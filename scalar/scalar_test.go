package scalar

// Test objectives shared by the solver tests.

// linear is f(x) = x - root, with derivative 1. Newton finds the root in a
// single step from anywhere.
type linear struct {
	root float64
}

func (l linear) Obj(x float64) float64 { return x - l.root }

func (l linear) Deriv(x float64) float64 { return 1 }

// shiftedSquare is f(x) = x*x - c, with roots at +-sqrt(c).
type shiftedSquare struct {
	c float64
}

func (q shiftedSquare) Obj(x float64) float64 { return x*x - q.c }

func (q shiftedSquare) Deriv(x float64) float64 { return 2 * x }

// counting wraps an objective and counts evaluations.
type counting struct {
	calls int
	f     Objective
}

func (c *counting) Obj(x float64) float64 {
	c.calls++
	return c.f.Obj(x)
}

// scripted returns canned values in call order, for exercising paths that
// only a stateful objective can reach.
type scripted struct {
	calls int
	vals  []float64
}

func (s *scripted) Obj(x float64) float64 {
	v := s.vals[s.calls]
	s.calls++
	return v
}
