package mds

// GlobalBest is the coordinator's view of the best trial found across all
// workers, together with which worker produced it.
type GlobalBest struct {
	Trial
	WorkerRank int
}

// Reduce combines per-worker shard results into one GlobalBest and the
// total evaluation count, per §4.E. Ties in Fx are broken by lowest trial
// index, then lowest worker rank, so the result is invariant under
// permutation of the input slice (associative & commutative modulo the
// tie-break, as required by §8). It generalizes the rank-0 MPI_Recv loop
// in the reference driver into an in-process gather.
func Reduce(results []ShardResult) (GlobalBest, uint64, error) {
	var total uint64
	gb := GlobalBest{Trial: worstTrial(), WorkerRank: -1}
	found := false

	for _, r := range results {
		total += r.LocalFunEvals
		if r.Best.Index < 0 {
			continue // empty shard, nothing to contribute
		}
		if betterTrial(r.Best, r.Rank, gb.Trial, gb.WorkerRank) {
			gb = GlobalBest{Trial: r.Best, WorkerRank: r.Rank}
		}
		found = true
	}

	if !found {
		return GlobalBest{}, total, ErrReductionFailed
	}
	return gb, total, nil
}

// betterTrial reports whether (t, rank) should replace (cur, curRank) as
// the global best: strictly lower Fx wins outright; on an exact Fx tie,
// lower trial index wins; on a further tie, lower worker rank wins.
func betterTrial(t Trial, rank int, cur Trial, curRank int) bool {
	if t.Fx != cur.Fx {
		return t.Fx < cur.Fx
	}
	if t.Index != cur.Index {
		return t.Index < cur.Index
	}
	return rank < curRank
}
