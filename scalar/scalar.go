// Package scalar finds roots of scalar nonlinear equations f(x) == 0.
//
// Two independent algorithms are provided, Newton-Raphson iteration and
// bracketing bisection, plus a Solve combinator that tries Newton first and
// falls back to bisection. Solvers hold no shared state; concurrent calls are
// safe as long as the supplied objectives are.
package scalar

import (
	"github.com/btracey/roots/common"
	"github.com/btracey/roots/write"
)

// Objective is a real-valued function of one real variable whose root is
// being found. The solvers make no purity assumption; an Objective may keep
// state across evaluations.
type Objective interface {
	Obj(x float64) float64
}

// Deriver evaluates the derivative of an objective. It must be the true
// derivative of the objective for Newton-Raphson to converge correctly. This
// is not verified.
type Deriver interface {
	Deriv(x float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface.
type ObjectiveFunc func(float64) float64

func (f ObjectiveFunc) Obj(x float64) float64 { return f(x) }

// DerivFunc adapts an ordinary function to the Deriver interface.
type DerivFunc func(float64) float64

func (f DerivFunc) Deriv(x float64) float64 { return f(x) }

// Settings is a structure containing settings for a single solver
type Settings struct {
	Tolerance         float64 // Convergence tolerance of the solver
	MaximumIterations int     // Sets the number of refinement steps before the solver is taken to have failed
	Writing           *write.Settings
}

// DefaultSettings returns the default settings for the solvers: a tolerance
// of 1e-5, a budget of 20 iterations, and no trace output
func DefaultSettings() *Settings {
	return &Settings{
		Tolerance:         1e-5,
		MaximumIterations: 20,
		Writing:           write.DefaultSettings(),
	}
}

// SolveSettings is a structure containing settings for the Solve combinator.
// The two solvers keep independent iteration budgets
type SolveSettings struct {
	Tolerance           float64 // Convergence tolerance shared by both solvers
	NewtonIterations    int     // Iteration budget for the Newton-Raphson attempt
	BisectionIterations int     // Iteration budget for the bisection fallback
	Writing             *write.Settings
}

// DefaultSolveSettings returns the default settings for Solve: a tolerance of
// 1e-5 and 20 iterations for each solver. Stage notices print on standard
// output; set Writing to silence or redirect them
func DefaultSolveSettings() *SolveSettings {
	return &SolveSettings{
		Tolerance:           1e-5,
		NewtonIterations:    20,
		BisectionIterations: 20,
		Writing:             write.StdoutNotices(),
	}
}

func (s *SolveSettings) newtonSettings() *Settings {
	return &Settings{
		Tolerance:         s.Tolerance,
		MaximumIterations: s.NewtonIterations,
		Writing:           s.Writing,
	}
}

func (s *SolveSettings) bisectionSettings() *Settings {
	return &Settings{
		Tolerance:         s.Tolerance,
		MaximumIterations: s.BisectionIterations,
		Writing:           s.Writing,
	}
}

// Result is the outcome of a root search
type Result struct {
	Root                float64       // Final estimate of the root (NaN when Status is InvalidBracket)
	Residual            float64       // Objective evaluated at Root (NaN for Newton-Raphson, which never evaluates it there)
	Iterations          int           // Number of refinement steps taken by the solver
	FunctionEvaluations int           // Total calls made to the objective and its derivative
	Status              common.Status // How the search ended
}

// Converged reports whether the search ended at a root within tolerance.
func (r *Result) Converged() bool {
	return r.Status > 0
}

// helper tracks iteration and evaluation counts for a solver and drives the
// trace display. The solver registers itself as the display's data adder
type helper struct {
	iter     int
	funEvals int

	display *write.Display
}

func newHelper(s *Settings, adder write.DataAdder) *helper {
	h := &helper{
		display: write.NewDisplay(),
	}
	h.display.AddDataAdder(adder)
	h.display.Init(s.Writing)
	return h
}

// iterate records one refinement step and its evaluations and writes the trace
func (h *helper) iterate(nFunEvals int) {
	h.iter++
	h.funEvals += nFunEvals
	h.display.Iterate()
}

// addEvals records objective evaluations made outside a counted step
func (h *helper) addEvals(n int) {
	h.funEvals += n
}

func (h *helper) result(root, residual float64, status common.Status) *Result {
	return &Result{
		Root:                root,
		Residual:            residual,
		Iterations:          h.iter,
		FunctionEvaluations: h.funEvals,
		Status:              status,
	}
}
