// Package mcsearch implements the single-temperature Metropolis Monte
// Carlo search of spec.md §4.4: repeatedly pick a random residue, attempt a
// move on it, and accept or reject the result under the Metropolis
// criterion, tracking the best (lowest-energy) conformation seen.
package mcsearch

import (
	"errors"
	"math"
	"math/rand"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/energy"
	"github.com/latticefold/hpremc/hpstring"
	"github.com/latticefold/hpremc/initconf"
	"github.com/latticefold/hpremc/moves"
	"github.com/latticefold/hpremc/rng"
)

// ErrInvalidIterations indicates Phi < 0.
var ErrInvalidIterations = errors.New("mcsearch: Phi must be >= 0")

// ErrInvalidNu indicates Nu outside [0,1].
var ErrInvalidNu = errors.New("mcsearch: Nu must be in [0,1]")

// ErrInvalidTemperature indicates T <= 0.
var ErrInvalidTemperature = errors.New("mcsearch: T must be > 0")

// Options configures a search. The zero value is not valid; use
// DefaultOptions and override the fields that matter.
type Options struct {
	// Phi is the number of move attempts per call.
	Phi int
	// Nu is the pull-vs-VSHD dispatch probability, in [0,1].
	Nu float64
	// T is the Metropolis temperature, > 0.
	T float64
	// Rand drives residue selection, move internals, and the Metropolis
	// coin. A nil Rand is replaced with rng.FromSeed(0), a fresh stream
	// seeded with rng.DefaultSeed, so every nil-Rand call replays the
	// same stream.
	Rand *rand.Rand
}

// DefaultOptions returns the typical parameter range named in spec.md §6:
// Phi=1000, Nu=0.5, T=160.
func DefaultOptions() Options {
	return Options{
		Phi:  1000,
		Nu:   0.5,
		T:    160,
		Rand: rng.FromSeed(0),
	}
}

// Result is the outcome of a search: the best conformation found over the
// trajectory and its energy, plus bookkeeping counters.
type Result struct {
	BestConformation *conformation.Conformation
	BestEnergy       int
	Accepted         int
	Rejected         int
}

// Search runs Phi Metropolis iterations starting from start (or a fresh
// random self-avoiding walk if start is nil) and returns the global minimum
// observed over the trajectory (spec.md §9 Open Question: the returned
// conformation is the global minimum, not the last-accepted state).
//
// Complexity: O(Phi * n) amortized (each move touches O(1) residues in the
// common case; energy recomputation is O(h^2) per accepted or rejected
// trial, dominating for large h).
func Search(hp string, start *conformation.Conformation, opts Options) (Result, error) {
	if err := hpstring.Validate(hp); err != nil {
		return Result{}, err
	}
	if opts.Phi < 0 {
		return Result{}, ErrInvalidIterations
	}
	if opts.Nu < 0 || opts.Nu > 1 {
		return Result{}, ErrInvalidNu
	}
	if opts.T <= 0 {
		return Result{}, ErrInvalidTemperature
	}
	r := opts.Rand
	if r == nil {
		r = rng.FromSeed(0)
	}

	current := start
	if current == nil {
		generated, err := initconf.RandomSAW(len(hp), r, 0)
		if err != nil {
			return Result{}, err
		}
		current = generated
	}

	currentE := energy.Count(current, hp)
	best := current
	bestE := currentE
	var accepted, rejected int

	n := current.Len()
	for i := 0; i < opts.Phi; i++ {
		k := r.Intn(n)
		res := moves.Dispatch(current, k, opts.Nu, r)
		candidate := res.Conformation
		candidateE := currentE
		if res.Applied {
			candidateE = energy.Count(candidate, hp)
		}

		delta := candidateE - currentE
		accept := delta <= 0
		if !accept {
			accept = r.Float64() <= math.Exp(-float64(delta)/opts.T)
		}

		if accept {
			current = candidate
			currentE = candidateE
			accepted++
		} else {
			rejected++
		}

		if currentE < bestE {
			best = current
			bestE = currentE
		}
	}

	return Result{
		BestConformation: best,
		BestEnergy:       bestE,
		Accepted:         accepted,
		Rejected:         rejected,
	}, nil
}
