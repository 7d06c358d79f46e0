// Package mds solves bound-constrained global minimization of a smooth
// nonlinear scalar function by multistart Multidirectional Search.
//
// A single local search (Engine.Run) walks a pattern-search state machine
// over an n-simplex: reflect, expand or contract, reject moves that leave
// the box bounds, and stop on one of three termination modes. Multistart
// launches many such searches from deterministic random starting points,
// shards the trials across workers, and reduces the per-worker bests into
// one global best (Driver.Run).
package mds
