package mds

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Config configures one multistart driver run.
type Config struct {
	NVars     int
	NTrials   int
	Workers   int // number of worker shards; defaults to 1 if <= 0
	TSeed     int64
	Bounds    *Bounds // nil defaults to NewBounds(NVars, -2, 2)
	Params    *Params // nil defaults to DefaultParams()
	Objective func([]float64) float64
}

// resolve fills in defaults and returns the concrete Bounds/Params to run
// with, without mutating cfg.
func (cfg Config) resolve() (Bounds, Params, int) {
	bounds := NewBounds(cfg.NVars, -2, 2)
	if cfg.Bounds != nil {
		bounds = *cfg.Bounds
	}
	params := DefaultParams()
	if cfg.Params != nil {
		params = *cfg.Params
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return bounds, params, workers
}

// Validate implements the ConfigError taxonomy of §7: invalid nvars,
// ntrials, bounds or pattern-search parameters are reported here, before
// any worker runs.
func (cfg Config) Validate() error {
	if cfg.NVars <= 0 || cfg.NVars > MaxVars {
		return ErrInvalidDimension
	}
	if cfg.NTrials <= 0 {
		return ErrInvalidTrials
	}
	bounds, params, _ := cfg.resolve()
	if bounds.Dim() != cfg.NVars {
		return ErrInvalidBounds
	}
	if err := bounds.Validate(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if cfg.Objective == nil {
		return fmt.Errorf("mds: config: nil objective: %w", ErrInvalidParams)
	}
	return nil
}

// Driver orchestrates Worker shard, Reduction and Report construction over
// a Config, generalizing multistart_mds_mpi.c's main() — goroutines joined
// by a sync.WaitGroup, each writing its rank's slot of a result slice,
// stand in for MPI_Init/MPI_Send/MPI_Recv.
type Driver struct {
	Logger *log.Logger
}

// Run validates cfg, fans trials out across cfg.Workers goroutines, reduces
// their results, and returns a Report. A ConfigError aborts before any
// worker runs; a failed Reduce (e.g. every shard somehow empty) is
// returned as ErrReductionFailed without a partial Report.
func (d *Driver) Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	bounds, params, workers := cfg.resolve()

	t0 := time.Now()

	results := make([]ShardResult, workers)
	var wg sync.WaitGroup
	for rank := 0; rank < workers; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			shard := &Shard{
				Rank:      rank,
				Size:      workers,
				NTrials:   cfg.NTrials,
				TSeed:     cfg.TSeed,
				Bounds:    bounds,
				Params:    params,
				Objective: cfg.Objective,
			}
			results[rank] = shard.Run()
		}(rank)
	}
	wg.Wait()

	best, funevals, err := Reduce(results)
	if err != nil {
		return Report{}, fmt.Errorf("mds: reduction: %w", err)
	}

	elapsed := time.Since(t0)

	report := Report{
		ElapsedSeconds:  elapsed.Seconds(),
		NTrials:         cfg.NTrials,
		FunEvals:        funevals,
		BestTrial:       best.Index,
		BestIterations:  best.Iterations,
		BestNfev:        best.Evaluations,
		BestPoint:       best.Endpoint,
		BestFx:          best.Fx,
	}

	if d.Logger != nil {
		d.Logger.Printf("mds: elapsed=%.3fs trials=%d funevals=%d best_trial=%d best_fx=%.7g",
			report.ElapsedSeconds, report.NTrials, report.FunEvals, report.BestTrial, report.BestFx)
	}

	return report, nil
}
