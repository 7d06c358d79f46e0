package mds

// Shard describes one worker's share of a multistart run: the trial range
// it owns, the problem it is solving, and the RNG seed it derives its
// stream from.
type Shard struct {
	Rank    int
	Size    int
	NTrials int
	TSeed   int64

	Bounds    Bounds
	Params    Params
	Objective func([]float64) float64
}

// Range returns the half-open trial interval [start, end) this shard owns,
// per §4.D: trials are split as evenly as possible across Size workers,
// with the last worker's upper bound forced to NTrials to absorb any
// remainder.
func (sh *Shard) Range() (start, end int) {
	step := float64(sh.NTrials) / float64(sh.Size)
	start = int(float64(sh.Rank) * step)
	end = int(float64(sh.Rank+1) * step)
	if sh.Rank == sh.Size-1 {
		end = sh.NTrials
	}
	return start, end
}

// ShardResult is the per-worker outcome handed to Reduce: the best trial
// this worker observed and the total evaluations it spent getting there.
type ShardResult struct {
	Rank          int
	Best          Trial
	LocalFunEvals uint64
}

// Run executes every trial in this shard's range sequentially (the
// shared-nothing, no-synchronization model of §5.1 — only the worker
// running this shard touches its RNG stream, scratch simplices and best).
// It returns the worker's local best and its summed evaluation count. An
// empty shard (start == end) returns the initial state untouched.
func (sh *Shard) Run() ShardResult {
	start, end := sh.Range()
	rng := newTrialRNG(int(sh.TSeed), sh.Rank, sh.NTrials)
	engine := &Engine{}

	best := worstTrial()
	var localFunEvals uint64

	for trial := start; trial < end; trial++ {
		startpt := rng.startPoint(sh.Bounds)
		res := engine.Run(sh.Objective, startpt, sh.Bounds, sh.Params)
		localFunEvals += uint64(res.Evaluations)

		if res.Fx < best.Fx {
			best = Trial{
				Index:       trial,
				Iterations:  res.Iterations,
				Evaluations: res.Evaluations,
				Endpoint:    res.Endpoint,
				Fx:          res.Fx,
				Term:        res.Term,
			}
		}
	}

	return ShardResult{Rank: sh.Rank, Best: best, LocalFunEvals: localFunEvals}
}
