package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btracey/roots/common"
)

func TestBisectionSqrt2(t *testing.T) {
	f := shiftedSquare{c: 2}

	res, err := Bisection(f, 0, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
	assert.Equal(t, common.ResidualConverged, res.Status)
	assert.LessOrEqual(t, math.Abs(res.Residual), 1e-5)
	assert.True(t, res.Converged())
}

func TestBisectionInvalidBracket(t *testing.T) {
	f := shiftedSquare{c: 2}

	// f(2) and f(3) are both positive; the check fires on the first pass
	res, err := Bisection(f, 2, 3, nil)
	require.Error(t, err)
	var berr *common.InvalidBracketError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, 2.0, berr.A)
	assert.Equal(t, 3.0, berr.B)
	assert.Equal(t, 2.0, berr.FA)
	assert.Equal(t, 7.0, berr.FB)
	assert.Equal(t, common.InvalidBracket, res.Status)
	assert.True(t, math.IsNaN(res.Root))
	assert.Equal(t, 0, res.Iterations)
}

func TestBisectionBudgetExhausted(t *testing.T) {
	f := shiftedSquare{c: 2}
	s := &Settings{Tolerance: 1e-5, MaximumIterations: 5}

	// The loop runs to residual convergence regardless of the budget; the
	// budget is only consulted afterwards
	res, err := Bisection(f, 0, 2, s)
	require.Error(t, err)
	var cerr *common.ConvergenceError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 5, cerr.MaxIterations)
	assert.Equal(t, common.MaximumIterations, res.Status)
	assert.Greater(t, res.Iterations, 5)
	// The final estimate is still a good root, it just overspent
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
}

func TestBisectionExactRootEarlyExit(t *testing.T) {
	// The midpoint of [0, 2] evaluates above tolerance for the loop test and
	// then to exactly zero inside the loop body. Only a stateful objective
	// can reach the early exit this way. The exact-root path skips both the
	// iteration count and the budget check, so a zero budget still succeeds
	f := &scripted{vals: []float64{1, -1, 1, 0}}
	s := &Settings{Tolerance: 1e-5, MaximumIterations: 0}

	res, err := Bisection(f, 0, 2, s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Root)
	assert.Equal(t, 0.0, res.Residual)
	assert.Equal(t, common.ExactRoot, res.Status)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, 4, f.calls)
}

func TestBisectionLazyValidation(t *testing.T) {
	// Both endpoints sit on the same side of zero, but the initial midpoint
	// already meets the tolerance, so the bracket is never checked
	f := shiftedSquare{c: 2}

	res, err := Bisection(f, math.Sqrt2, math.Sqrt2, nil)
	require.NoError(t, err)
	assert.Equal(t, common.ResidualConverged, res.Status)
	assert.Equal(t, 0, res.Iterations)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-10)
}
