package mds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphere(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// TestEngineAlreadyOptimal is end-to-end scenario 6: n=2, start at the
// global optimum (1,1), delta=0.25. Because the pivot's function value is
// already the global minimum, no reflection or contraction candidate can
// ever beat it, so foundBetter never goes true and the run converges
// entirely inside the first outer pass's inner retry loop (repeated
// contraction shrinking the simplex by theta=0.25 each retry) until
// size(S) < eps trips the termination check — reported Iterations stays
// very small (the outer counter advances once, on the termination check
// itself), well inside the spec's bound of <= 30.
func TestEngineAlreadyOptimal(t *testing.T) {
	f := rosenbrock
	start := []float64{1, 1}
	bounds := NewBounds(2, -2, 2)
	params := DefaultParams()

	e := &Engine{}
	res := e.Run(f, start, bounds, params)

	require.Equal(t, TermConverged, res.Term)
	assert.LessOrEqual(t, res.Iterations, 30)
	assert.InDelta(t, 0.0, res.Fx, 1e-12)
}

// TestEngineEvalBudgetExhausted is end-to-end scenario 4: a tiny
// maxfevals forces every trial to terminate with term=1, never crashing
// and still returning a usable record.
func TestEngineEvalBudgetExhausted(t *testing.T) {
	params := DefaultParams()
	params.MaxFevals = 10
	params.MaxIter = 10000

	e := &Engine{}
	res := e.Run(rosenbrock, []float64{0, 0, 0, 0}, NewBounds(4, -2, 2), params)

	assert.Equal(t, TermEvalBudget, res.Term)
	assert.Greater(t, res.Evaluations, 10)
	assert.NotNil(t, res.Endpoint)
}

// TestEngineDegenerateBoundsConverges is end-to-end scenario 5: bounds so
// narrow (xr - xl = 1e-9) that the initial simplex's own vertices (built
// from delta, independent of bounds) and every reflection fall outside
// them. inbounds_simplex is never applied to the working simplex itself
// (only to reflection/expansion candidates, per §4.B), so reflection is
// always rejected and the run proceeds via repeated contraction inside
// the inner retry loop, converging well within the spec's <= 30 outer
// iterations (the pivot here is already the sphere optimum, so this
// collapses almost entirely into the first outer pass, same as
// TestEngineAlreadyOptimal above).
func TestEngineDegenerateBoundsConverges(t *testing.T) {
	lo, hi := 0.0, 1e-9
	bounds := Bounds{Lower: []float64{lo}, Upper: []float64{hi}}
	params := DefaultParams()

	e := &Engine{}
	res := e.Run(sphere, []float64{lo}, bounds, params)

	assert.Equal(t, TermConverged, res.Term)
	assert.LessOrEqual(t, res.Iterations, 30)
	assert.Equal(t, []float64{lo}, res.Endpoint)
}

// TestEngineConvergesGivenLargeBudgets checks the general convergence
// property of §8: for maxfevals and maxiter large relative to the
// problem, the engine terminates with term=2.
func TestEngineConvergesGivenLargeBudgets(t *testing.T) {
	params := DefaultParams()
	params.MaxFevals = 1_000_000
	params.MaxIter = 1_000_000

	e := &Engine{}
	res := e.Run(sphere, []float64{3, -2, 1.5}, NewBounds(3, -10, 10), params)

	require.Equal(t, TermConverged, res.Term)
	assert.Less(t, res.Fx, 1e-8)
	for _, xi := range res.Endpoint {
		assert.InDelta(t, 0, xi, 1e-2)
	}
}

// TestContractShrinksSize is a narrow, always-true structural property of
// the contraction step: every vertex moves toward the pivot by a factor of
// theta in (0,1), so the simplex's size strictly decreases.
func TestContractShrinksSize(t *testing.T) {
	s := NewSimplex(2)
	s.Initialize([]float64{0, 0}, 1.0)
	before := s.Size()

	c := NewSimplex(2)
	contract(s, c, 0.25)
	s.Assign(c)

	assert.Less(t, s.Size(), before)
}

// TestReflectRejectsOutOfBounds checks that reflect reports false (and
// leaves the candidate unusable) whenever any reflected vertex would leave
// the box, per §4.B step 2.
func TestReflectRejectsOutOfBounds(t *testing.T) {
	bounds := NewBounds(1, -1, 1)

	s := NewSimplex(1)
	s.Initialize([]float64{-0.9}, 0.25) // vertex 1 at -0.65
	r := NewSimplex(1)
	// reflected vertex 1 = 2*(-0.9) - (-0.65) = -1.15, outside [-1,1]
	assert.False(t, reflect(s, r, bounds))
}

// TestArgminTieBreak verifies lowest-index tie-breaking.
func TestArgminTieBreak(t *testing.T) {
	assert.Equal(t, 0, argmin([]float64{1, 1, 1}))
	assert.Equal(t, 2, argmin([]float64{5, 4, 3, 4, 5}))
}
