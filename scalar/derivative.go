package scalar

import "gonum.org/v1/gonum/diff/fd"

// FiniteDifference returns a Deriver that estimates the derivative of f by
// central finite differences, for objectives with no analytic derivative at
// hand. NewtonRaphson's convergence contract assumes an accurate derivative;
// the estimate is adequate for smooth objectives at moderate scales.
func FiniteDifference(f Objective) Deriver {
	return DerivFunc(func(x float64) float64 {
		return fd.Derivative(f.Obj, x, &fd.Settings{Formula: fd.Central})
	})
}
