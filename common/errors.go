package common

import "fmt"

// ConvergenceError means a solver exhausted its iteration budget before
// meeting its tolerance. MaxIterations records the budget that was attempted.
type ConvergenceError struct {
	MaxIterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("roots: max iterations of %d has been exceeded", e.MaxIterations)
}

// InvalidBracketError means the two bracket endpoints handed to bisection do
// not straddle a sign change, so the interval is not known to contain a root.
type InvalidBracketError struct {
	A, B   float64 // The bracket endpoints at the time of the check
	FA, FB float64 // The objective evaluated at A and B
}

func (e *InvalidBracketError) Error() string {
	return fmt.Sprintf("roots: f(%v) = %v and f(%v) = %v do not differ in sign", e.A, e.FA, e.B, e.FB)
}

// DerivativeError means the derivative evaluated to exactly zero during a
// Newton-Raphson step, so the iteration function is undefined there.
type DerivativeError struct {
	At float64 // The location where the derivative vanished
}

func (e *DerivativeError) Error() string {
	return fmt.Sprintf("roots: derivative is zero at x = %v", e.At)
}
