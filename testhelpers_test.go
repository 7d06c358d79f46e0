package mds

import "gonum.org/v1/gonum/optimize/functions"

// rosenbrock is the reference objective named throughout spec.md §8's
// end-to-end scenarios: f(x) = sum_i 100(x_{i+1}-x_i^2)^2 + (x_i-1)^2,
// minimum 0 at x = (1, ..., 1). gonum ships this exact test function.
func rosenbrock(x []float64) float64 {
	return functions.ExtendedRosenbrock{}.Func(x)
}
