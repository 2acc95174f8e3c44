package common

// Toler is a type for checking the convergence of a tracked quantity against
// an absolute tolerance.
type Toler struct {
	tol    float64
	recent float64
}

// Init initializes the Toler with the tolerance and the first tracked value.
func (t *Toler) Init(tol, initVal float64) {
	t.tol = tol
	t.recent = initVal
}

// Add adds a new value to the toler (after an iteration)
func (t *Toler) Add(v float64) {
	t.recent = v
}

// Recent returns the most recently added value.
func (t *Toler) Recent() float64 {
	return t.recent
}

// Converged returns true if the most recent value is not strictly above the
// tolerance. Solvers loop while the tracked quantity exceeds the tolerance,
// so equality with the tolerance counts as converged.
func (t *Toler) Converged() bool {
	return !(t.recent > t.tol)
}
