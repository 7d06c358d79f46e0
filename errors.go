package mds

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mds: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary if context is essential; callers still use errors.Is.

var (
	// ErrInvalidDimension is returned when nvars is <= 0 or > MaxVars.
	ErrInvalidDimension = errors.New("mds: invalid problem dimension")

	// ErrInvalidTrials is returned when ntrials <= 0.
	ErrInvalidTrials = errors.New("mds: ntrials must be positive")

	// ErrInvalidBounds is returned when xl[j] >= xr[j] for some j.
	ErrInvalidBounds = errors.New("mds: lower bound must be strictly less than upper bound")

	// ErrInvalidParams is returned when delta, theta or mu is non-positive.
	// Config.Validate also returns it, wrapped, when Objective is nil.
	ErrInvalidParams = errors.New("mds: delta, theta and mu must be positive")

	// ErrReductionFailed is returned by Reduce when no shard produced a
	// finite result (e.g. every shard was empty).
	ErrReductionFailed = errors.New("mds: reduction produced no candidate")
)
