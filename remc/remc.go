// Package remc implements the Replica-Exchange Monte Carlo driver of
// spec.md §4.5: a temperature ladder of replicas, each advanced by an
// mcsearch sweep per outer iteration, with a neighbor-pair exchange step
// using an alternating parity offset.
package remc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/energy"
	"github.com/latticefold/hpremc/hpstring"
	"github.com/latticefold/hpremc/initconf"
	"github.com/latticefold/hpremc/mcsearch"
	"github.com/latticefold/hpremc/rng"
)

var (
	// ErrInvalidChi indicates Chi < 2.
	ErrInvalidChi = errors.New("remc: Chi must be >= 2")
	// ErrInvalidMaxIterations indicates MaxIterations < 0.
	ErrInvalidMaxIterations = errors.New("remc: MaxIterations must be >= 0")
	// ErrInvalidTimeout indicates Timeout <= 0.
	ErrInvalidTimeout = errors.New("remc: Timeout must be > 0")
)

// deadlineCheckMask bounds how often the outer loop samples the wall clock:
// every 8th iteration, sparing time.Now() calls on the common path where
// MaxIterations or E* fires first.
const deadlineCheckMask = 7

// Options configures a REMC run. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	// Phi is the per-replica sweep length per outer iteration.
	Phi int
	// Nu is the pull-vs-VSHD dispatch probability, in [0,1].
	Nu float64
	// TInit and TFinal bound the temperature ladder, inclusive.
	TInit, TFinal float64
	// Chi is the replica count, >= 2.
	Chi int
	// MaxIterations bounds the outer loop.
	MaxIterations int
	// Timeout bounds wall-clock runtime.
	Timeout time.Duration
	// Rand drives the ladder's randomness. A nil Rand is replaced with
	// rng.FromSeed(0), a fresh stream seeded with rng.DefaultSeed, so every
	// nil-Rand run replays the same stream.
	Rand *rand.Rand
	// Cancel, if non-nil, is checked alongside the wall-clock deadline; a
	// closed channel stops the run at the next sparse check and returns
	// best-so-far. Used by the ensemble coordinator to stop siblings once
	// a winner is found.
	Cancel <-chan struct{}
	// Log receives one line per outer iteration ("iteration index +
	// current best energy", spec.md §6). Defaults to io.Discard.
	Log io.Writer
}

func (o Options) canceled() bool {
	if o.Cancel == nil {
		return false
	}
	select {
	case <-o.Cancel:
		return true
	default:
		return false
	}
}

// DefaultOptions returns the typical parameter range of spec.md §6:
// Phi=1000, Nu=0.5, TInit=220, TFinal=160, Chi=5, MaxIterations=1000,
// Timeout=30s.
func DefaultOptions() Options {
	return Options{
		Phi:           1000,
		Nu:            0.5,
		TInit:         220,
		TFinal:        160,
		Chi:           5,
		MaxIterations: 1000,
		Timeout:       30 * time.Second,
		Rand:          rng.FromSeed(0),
	}
}

func (o Options) validate() error {
	if o.Chi < 2 {
		return ErrInvalidChi
	}
	if o.Nu < 0 || o.Nu > 1 {
		return mcsearch.ErrInvalidNu
	}
	if o.MaxIterations < 0 {
		return ErrInvalidMaxIterations
	}
	if o.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Replica is a conformation paired with its cached energy and its fixed
// temperature-ladder rung.
type Replica struct {
	C *conformation.Conformation
	E int
	T float64
}

// Ladder returns the Chi temperatures linearly interpolated between tInit
// and tFinal inclusive: T[i] = tInit + i*(tFinal-tInit)/(chi-1).
func Ladder(tInit, tFinal float64, chi int) []float64 {
	t := make([]float64, chi)
	for i := 0; i < chi; i++ {
		t[i] = tInit + float64(i)*(tFinal-tInit)/float64(chi-1)
	}
	return t
}

// InitReplicas returns Chi replicas all holding a copy of start at their
// ladder temperature.
func InitReplicas(start *conformation.Conformation, hp string, temps []float64) []Replica {
	e := energy.Count(start, hp)
	replicas := make([]Replica, len(temps))
	for i, t := range temps {
		replicas[i] = Replica{C: start, E: e, T: t}
	}
	return replicas
}

// SwapPhase attempts an exchange on every adjacent pair (i, i+1) for
// i = offset+1, offset+3, ... while i+1 < len(replicas), per spec.md §4.5.
// Swapping exchanges conformation and energy between the pair, leaving each
// replica's T fixed to its ladder rung (discipline (a)).
// SwapPhase returns the number of pairs attempted and the number actually
// swapped, for callers (and tests) that want to observe the exchange rate.
func SwapPhase(replicas []Replica, offset int, r *rand.Rand) (attempts, swaps int) {
	for i := offset + 1; i+1 < len(replicas); i += 2 {
		attempts++
		a, b := replicas[i], replicas[i+1]
		delta := (1/b.T - 1/a.T) * (float64(a.E) - float64(b.E))
		if delta <= 0 || r.Float64() <= math.Exp(-delta) {
			replicas[i].C, replicas[i+1].C = b.C, a.C
			replicas[i].E, replicas[i+1].E = b.E, a.E
			swaps++
		}
	}
	return attempts, swaps
}

// Result is the outcome of a REMC run.
type Result struct {
	BestConformation *conformation.Conformation
	BestEnergy       int
	Iterations       int
	SwapAttempts     int
	Swaps            int
}

// Run drives the outer loop of spec.md §4.5: while best.E > target AND
// iter < MaxIterations AND elapsed < Timeout, sweep every replica with
// mcsearch and then attempt a neighbor-pair exchange. Returns the best
// conformation and energy observed across all replicas, even if target was
// never reached.
func Run(hp string, target int, start *conformation.Conformation, opts Options) (Result, error) {
	if err := hpstring.Validate(hp); err != nil {
		return Result{}, err
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	r := opts.Rand
	if r == nil {
		r = rng.FromSeed(0)
	}
	logw := opts.Log
	if logw == nil {
		logw = io.Discard
	}

	if start == nil {
		generated, err := initconf.RandomSAW(len(hp), r, 0)
		if err != nil {
			return Result{}, err
		}
		start = generated
	}

	temps := Ladder(opts.TInit, opts.TFinal, opts.Chi)
	replicas := InitReplicas(start, hp, temps)

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
	for bestE > target && iter < opts.MaxIterations {
		if iter&deadlineCheckMask == 0 && (time.Now().After(deadline) || opts.canceled()) {
			break
		}

		for i := range replicas {
			mcOpts := mcsearch.Options{
				Phi:  opts.Phi,
				Nu:   opts.Nu,
				T:    replicas[i].T,
				Rand: r,
			}
			res, err := mcsearch.Search(hp, replicas[i].C, mcOpts)
			if err != nil {
				return Result{}, err
			}
			replicas[i].C = res.BestConformation
			replicas[i].E = res.BestEnergy
			if replicas[i].E < bestE {
				best, bestE = replicas[i].C, replicas[i].E
			}
		}

		attempts, swaps := SwapPhase(replicas, offset, r)
		totalAttempts += attempts
		totalSwaps += swaps
		offset = 1 - offset
		iter++

		fmt.Fprintf(logw, "iteration %d: best energy %d\n", iter, bestE)
	}

	return Result{
		BestConformation: best,
		BestEnergy:       bestE,
		Iterations:       iter,
		SwapAttempts:     totalAttempts,
		Swaps:            totalSwaps,
	}, nil
}
