package mds

import (
	"log"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// EngineResult is the outcome of one local search: the endpoint, its
// objective value, and the bookkeeping needed to classify the run.
type EngineResult struct {
	Endpoint    []float64
	Fx          float64
	Iterations  int
	Evaluations int
	Term        TermCode
}

// Engine runs one Multidirectional Search local optimization. The zero
// value is ready to use; Logger and Trace are optional.
type Engine struct {
	// Logger receives a line per inner-loop pass (each reflect/expand/
	// contract attempt) when non-nil.
	Logger *log.Logger
	// Trace, when non-nil, is invoked once per inner-loop pass with the
	// current outer iteration number and a read-only view of the simplex.
	Trace func(iter int, s *Simplex)
}

// Run performs the pattern-search state machine of §4.B: initialize a
// right-angled simplex at start, then repeatedly reflect/expand/contract
// until one of the three termination modes fires.
func (e *Engine) Run(f func([]float64) float64, start []float64, bounds Bounds, p Params) EngineResult {
	n := len(start)
	s := NewSimplex(n)
	s.Initialize(start, p.Delta)

	nf := 0
	e.evaluateBatch(f, s, 0, n)
	nf += n + 1

	r := NewSimplex(n)
	ex := NewSimplex(n)

	k := s.Argmin()
	s.Swap(k, 0)

	iter := 0
	term := TermUnset
	terminated := false

	// Mirrors mds()'s loop nesting exactly: the outer loop counts genuine
	// improving steps (plus the pass on which a termination check fires),
	// while the inner loop retries reflect/expand/contract
	// (and the nf/size termination checks) as many times as it takes for a
	// step to beat the pivot. A contraction that fails to beat the pivot
	// leaves foundBetter false and the inner loop re-enters without
	// advancing iter — only a step that actually improves on the pivot, or
	// one of the two termination checks, ends the inner loop.
	for !terminated && iter < p.MaxIter {
		k = s.Argmin()
		s.Swap(k, 0)

		foundBetter := false
		for !foundBetter {
			if nf > p.MaxFevals {
				term = TermEvalBudget
				terminated = true
				break
			}
			if s.Size() < p.Eps {
				term = TermConverged
				terminated = true
				break
			}

			if e.Logger != nil {
				e.Logger.Printf("mds: iter=%d nf=%d fu0=%.10g size=%.3g", iter, nf, s.Fu[0], s.Size())
			}
			if e.Trace != nil {
				e.Trace(iter, s)
			}

			reflectionOK := reflect(s, r, bounds)
			var kr int
			if reflectionOK {
				e.evaluateBatch(f, r, 1, n)
				nf += n
				kr = argmin(r.Fu)
				foundBetter = r.Fu[kr] < s.Fu[0]
			}

			if foundBetter {
				if expand(s, ex, bounds, p.Mu) {
					e.evaluateBatch(f, ex, 1, n)
					nf += n
					ke := argmin(ex.Fu)
					if ex.Fu[ke] < r.Fu[kr] {
						s.Assign(ex)
					} else {
						s.Assign(r)
					}
				} else {
					s.Assign(r)
				}
			} else {
				contract(s, ex, p.Theta)
				e.evaluateBatch(f, ex, 1, n)
				nf += n
				ke := argmin(ex.Fu)
				foundBetter = ex.Fu[ke] < s.Fu[0]
				s.Assign(ex)
			}
		}

		iter++
		if iter == p.MaxIter {
			term = TermIterBudget
		}
	}

	k = s.Argmin()
	s.Swap(k, 0)

	endpoint := make([]float64, n)
	copy(endpoint, s.Vertex(0))

	return EngineResult{
		Endpoint:    endpoint,
		Fx:          s.Fu[0],
		Iterations:  iter,
		Evaluations: nf,
		Term:        term,
	}
}

// evaluateBatch fills dst.Fu[from:n+1] by calling f on dst's vertices
// [from, n], fanning the calls out across goroutines (the fine-grained,
// optional intra-MDS parallelism of §5.2) and joining before returning.
// With from = 1, vertex 0's value is left untouched — callers own it
// (shared pivot); only the initial evaluation passes from = 0.
func (e *Engine) evaluateBatch(f func([]float64) float64, dst *Simplex, from, n int) {
	var wg sync.WaitGroup
	for i := from; i <= n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dst.Fu[i] = f(dst.Vertex(i))
		}(i)
	}
	wg.Wait()
}

// stepVertex sets dst = s0 + alpha*(si-s0), the common shape of all three
// MDS moves (reflect: alpha=-1, expand: alpha=-mu, contract: alpha=theta),
// via floats.SubTo/AddScaledTo instead of a hand-rolled per-component loop.
func stepVertex(dst, s0, si []float64, alpha float64) {
	floats.SubTo(dst, si, s0)
	floats.AddScaledTo(dst, s0, alpha, dst)
}

// reflect fills r[1..n] = 2*s[0] - s[i] and r[0] mirrors s[0]. Returns
// false (leaving r's values for 1..n unevaluated) if any reflected vertex
// falls outside bounds.
func reflect(s, r *Simplex, bounds Bounds) bool {
	r.Fu[0] = s.Fu[0]
	n := s.Dim()
	s0 := s.Vertex(0)
	inBounds := true
	for i := 1; i <= n; i++ {
		ri, si := r.Vertex(i), s.Vertex(i)
		stepVertex(ri, s0, si, -1)
		if !bounds.InPoint(ri) {
			inBounds = false
		}
	}
	return inBounds
}

// expand fills e[1..n] = s[0] - mu*(s[i]-s[0]) and e[0] mirrors s[0].
// Returns false if any expanded vertex falls outside bounds.
func expand(s, e *Simplex, bounds Bounds, mu float64) bool {
	e.Fu[0] = s.Fu[0]
	n := s.Dim()
	s0 := s.Vertex(0)
	inBounds := true
	for i := 1; i <= n; i++ {
		ei, si := e.Vertex(i), s.Vertex(i)
		stepVertex(ei, s0, si, -mu)
		if !bounds.InPoint(ei) {
			inBounds = false
		}
	}
	return inBounds
}

// contract fills c[1..n] = s[0] + theta*(s[i]-s[0]) and c[0] mirrors s[0].
// Contraction shrinks toward the pivot, which is in-bounds, so for
// theta in (0,1) every resulting vertex remains in-bounds; no check is
// performed (matching the reference implementation).
func contract(s, c *Simplex, theta float64) {
	c.Fu[0] = s.Fu[0]
	n := s.Dim()
	s0 := s.Vertex(0)
	for i := 1; i <= n; i++ {
		ci, si := c.Vertex(i), s.Vertex(i)
		stepVertex(ci, s0, si, theta)
	}
}
