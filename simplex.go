package mds

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Simplex is an ordered collection of n+1 vertices in R^n, stored as a
// dense (n+1)xn matrix with a parallel slice of function values. By
// convention of the MDS engine, vertex 0 is the best (lowest Fu) vertex at
// the start of each outer iteration and when the engine returns; the
// remaining vertices are unordered.
type Simplex struct {
	n  int
	u  *mat.Dense
	Fu []float64

	centroidBuf []float64 // scratch for Size, reused across calls via resize
	diffBuf     []float64
}

// NewSimplex allocates a Simplex for an n-dimensional problem.
func NewSimplex(n int) *Simplex {
	return &Simplex{
		n:  n,
		u:  mat.NewDense(n+1, n, nil),
		Fu: make([]float64, n+1),
	}
}

// Dim reports the problem dimension n.
func (s *Simplex) Dim() int { return s.n }

// Vertex returns the i-th vertex as a mutable view into the underlying
// matrix row (0 <= i <= n).
func (s *Simplex) Vertex(i int) []float64 { return s.u.RawRowView(i) }

// Initialize sets vertex 0 to p and the remaining n vertices to p with one
// component each incremented by delta, producing a right-angled simplex of
// edge delta anchored at p along the positive orthant.
func (s *Simplex) Initialize(p []float64, delta float64) {
	copy(s.Vertex(0), p)
	for i := 1; i <= s.n; i++ {
		vi := s.Vertex(i)
		copy(vi, p)
		vi[i-1] += delta
	}
}

// Argmin returns the index of the smallest Fu[i], breaking ties at the
// lowest index.
func (s *Simplex) Argmin() int {
	return argmin(s.Fu)
}

func argmin(fu []float64) int {
	k := 0
	min := fu[0]
	for i := 1; i < len(fu); i++ {
		if fu[i] < min {
			min = fu[i]
			k = i
		}
	}
	return k
}

// Size computes the centroid of all n+1 vertices and returns the maximum
// Euclidean distance from any vertex to that centroid. Called at least
// once per inner-loop pass of Engine.Run, so its scratch buffers are
// reused across calls via resize rather than reallocated every time.
func (s *Simplex) Size() float64 {
	s.centroidBuf = resize(s.centroidBuf, s.n)
	for i := range s.centroidBuf {
		s.centroidBuf[i] = 0
	}
	for i := 0; i <= s.n; i++ {
		floats.Add(s.centroidBuf, s.Vertex(i))
	}
	floats.Scale(1/float64(s.n+1), s.centroidBuf)

	s.diffBuf = resize(s.diffBuf, s.n)
	maxDist := -1.0
	for i := 0; i <= s.n; i++ {
		floats.SubTo(s.diffBuf, s.Vertex(i), s.centroidBuf)
		if d := floats.Norm(s.diffBuf, 2); d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// Swap exchanges vertices a and b together with their function values.
func (s *Simplex) Swap(a, b int) {
	if a == b {
		return
	}
	va, vb := s.Vertex(a), s.Vertex(b)
	for j := 0; j < s.n; j++ {
		va[j], vb[j] = vb[j], va[j]
	}
	s.Fu[a], s.Fu[b] = s.Fu[b], s.Fu[a]
}

// Assign copies vertices 1..n and their function values from src into s.
// Vertex 0 is the shared pivot and is never copied.
func (s *Simplex) Assign(src *Simplex) {
	for i := 1; i <= s.n; i++ {
		copy(s.Vertex(i), src.Vertex(i))
		s.Fu[i] = src.Fu[i]
	}
}

// InBounds reports whether every vertex of s lies within b.
func (s *Simplex) InBounds(b Bounds) bool {
	for i := 0; i <= s.n; i++ {
		if !b.InPoint(s.Vertex(i)) {
			return false
		}
	}
	return true
}
