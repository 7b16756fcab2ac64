// Package parallel implements the two parallel execution strategies of
// spec.md §4.6 over the sequential remc driver: ensemble parallelism
// (independent REMC runs racing to a target energy) and intra-run
// parallelism (fanning out a single run's per-replica sweeps).
package parallel

import (
	"math/rand"
	"sync"
	"time"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/hpstring"
	"github.com/latticefold/hpremc/initconf"
	"github.com/latticefold/hpremc/mcsearch"
	"github.com/latticefold/hpremc/remc"
	"github.com/latticefold/hpremc/rng"
)

// pollInterval is how often the ensemble coordinator checks worker slots
// (spec.md §5: "≈100 ms").
const pollInterval = 100 * time.Millisecond

// EnsembleOptions configures REMC_multi: N independent REMC runs racing to
// a target energy.
type EnsembleOptions struct {
	REMC remc.Options
	// NWorkers is the number of independent REMC runs launched.
	NWorkers int
	// Seeds supplies one RNG seed per worker. len(Seeds) must equal
	// NWorkers; a nil Seeds derives NWorkers seeds from 1..NWorkers.
	Seeds []int64
}

// slot is one worker's published result, guarded by the coordinator's
// mutex.
type slot struct {
	done bool
	res  remc.Result
	err  error
}

// Ensemble runs REMC_multi: NWorkers independent REMC drivers, each
// starting from its own random conformation and RNG stream. As soon as any
// worker reports an energy <= target, the coordinator stops polling and
// returns that worker's result. It closes the shared Cancel channel so the
// remaining workers stop at their next check, and does not wait for them —
// they have no external side effects beyond their own slot write.
// If every worker finishes without reaching target, Ensemble returns the
// overall minimum across all slots.
func Ensemble(hp string, target int, opts EnsembleOptions) (remc.Result, error) {
	if err := hpstring.Validate(hp); err != nil {
		return remc.Result{}, err
	}
	if opts.NWorkers < 1 {
		opts.NWorkers = 1
	}
	seeds := opts.Seeds
	if seeds == nil {
		seeds = make([]int64, opts.NWorkers)
		for i := range seeds {
			seeds[i] = int64(i + 1)
		}
	}

	var mu sync.Mutex
	slots := make([]slot, opts.NWorkers)
	cancel := make(chan struct{})
	var cancelOnce sync.Once
	stop := func() { cancelOnce.Do(func() { close(cancel) }) }

	for i := 0; i < opts.NWorkers; i++ {
		go func(idx int) {
			workerOpts := opts.REMC
			workerOpts.Rand = rng.FromSeed(seeds[idx])
			workerOpts.Cancel = cancel
			res, err := remc.Run(hp, target, nil, workerOpts)

			mu.Lock()
			slots[idx] = slot{done: true, res: res, err: err}
			mu.Unlock()
		}(i)
	}

	for {
		mu.Lock()
		allDone := true
		var best *slot
		for i := range slots {
			if !slots[i].done {
				allDone = false
				continue
			}
			if slots[i].err != nil {
				continue
			}
			if slots[i].res.BestEnergy <= target {
				winner := slots[i]
				mu.Unlock()
				stop()
				return winner.res, nil
			}
			if best == nil || slots[i].res.BestEnergy < best.res.BestEnergy {
				best = &slots[i]
			}
		}
		if allDone {
			mu.Unlock()
			stop()
			if best == nil {
				return remc.Result{}, nil
			}
			return best.res, nil
		}
		mu.Unlock()
		time.Sleep(pollInterval)
	}
}

// IntraRun implements REMC_paral: a single REMC driver whose per-iteration
// replica sweeps run concurrently. Each fanned-out mcsearch.Search call
// sees its own replica and its own derived RNG stream; the swap phase runs
// on the coordinator goroutine after every sweep in the iteration joins.
func IntraRun(hp string, target int, start *conformation.Conformation, opts remc.Options) (remc.Result, error) {
	if err := hpstring.Validate(hp); err != nil {
		return remc.Result{}, err
	}
	if opts.Chi < 2 {
		return remc.Result{}, remc.ErrInvalidChi
	}
	if opts.Timeout <= 0 {
		return remc.Result{}, remc.ErrInvalidTimeout
	}
	r := opts.Rand
	if r == nil {
		r = rng.FromSeed(0)
	}

	if start == nil {
		generated, err := initconf.RandomSAW(len(hp), r, 0)
		if err != nil {
			return remc.Result{}, err
		}
		start = generated
	}

	temps := remc.Ladder(opts.TInit, opts.TFinal, opts.Chi)
	replicas := remc.InitReplicas(start, hp, temps)

	best := replicas[0].C
	bestE := replicas[0].E
	for _, rep := range replicas[1:] {
		if rep.E < bestE {
			best, bestE = rep.C, rep.E
		}
	}

	deadline := time.Now().Add(opts.Timeout)
	offset := 0
	iter := 0
	var totalAttempts, totalSwaps int
	for bestE > target && iter < opts.MaxIterations && time.Now().Before(deadline) {
		type outcome struct {
			idx int
			res mcsearch.Result
			err error
		}
		outcomes := make(chan outcome, len(replicas))
		var wg sync.WaitGroup
		for i := range replicas {
			wg.Add(1)
			go func(idx int, workerRand *rand.Rand) {
				defer wg.Done()
				mcOpts := mcsearch.Options{
					Phi:  opts.Phi,
					Nu:   opts.Nu,
					T:    replicas[idx].T,
					Rand: workerRand,
				}
				res, err := mcsearch.Search(hp, replicas[idx].C, mcOpts)
				outcomes <- outcome{idx: idx, res: res, err: err}
			}(i, rng.Derive(r, uint64(iter)*uint64(len(replicas))+uint64(i)))
		}
		wg.Wait()
		close(outcomes)

		for o := range outcomes {
			if o.err != nil {
				return remc.Result{}, o.err
			}
			replicas[o.idx].C = o.res.BestConformation
			replicas[o.idx].E = o.res.BestEnergy
		}
		for _, rep := range replicas {
			if rep.E < bestE {
				best, bestE = rep.C, rep.E
			}
		}

		attempts, swaps := remc.SwapPhase(replicas, offset, r)
		totalAttempts += attempts
		totalSwaps += swaps
		offset = 1 - offset
		iter++
	}

	return remc.Result{
		BestConformation: best,
		BestEnergy:       bestE,
		Iterations:       iter,
		SwapAttempts:     totalAttempts,
		Swaps:            totalSwaps,
	}, nil
}
