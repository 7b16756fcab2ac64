// Package initconf builds starting conformations for the search: a
// deterministic linear walk, and a uniform-ish self-avoiding walk (SAW)
// generated by randomized depth-first backtracking with restart.
package initconf

import (
	"errors"
	"math/rand"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
	"github.com/latticefold/hpremc/rng"
)

// DefaultMaxRestarts bounds RandomSAW's dead-end restarts (see
// SPEC_FULL.md §5: the original source restarts with a reseeded PRNG on
// every full backtracking dead-end without a bound; a total Go function
// needs one).
const DefaultMaxRestarts = 1000

// ErrInvalidLength indicates n < 1.
var ErrInvalidLength = errors.New("initconf: length must be >= 1")

// ErrSAWExhausted indicates RandomSAW dead-ended on every restart within
// maxRestarts attempts.
var ErrSAWExhausted = errors.New("initconf: exhausted restarts without a self-avoiding walk")

// Linear returns the conformation [(0,0),(1,0),...,(n-1,0)].
//
// Complexity: O(n).
func Linear(n int) (*conformation.Conformation, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	positions := make([]lattice.Position, n)
	for i := 0; i < n; i++ {
		positions[i] = lattice.Position{X: i, Y: 0}
	}
	return conformation.New(positions), nil
}

// RandomSAW returns a uniform-ish self-avoiding walk of length n starting
// at (0,0), built by depth-first backtracking: at each step the four
// lattice directions are tried in random order; the walk recurses into the
// first unvisited target; on a full dead-end it backtracks. If the
// top-level call exhausts every root direction, it restarts from (0,0)
// with a freshly derived RNG stream, up to maxRestarts times.
//
// maxRestarts <= 0 selects DefaultMaxRestarts.
//
// Complexity: for the short chains this module targets, backtracking
// converges quickly in practice; worst case is exponential in n.
func RandomSAW(n int, r *rand.Rand, maxRestarts int) (*conformation.Conformation, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	if maxRestarts <= 0 {
		maxRestarts = DefaultMaxRestarts
	}
	if r == nil {
		r = rng.FromSeed(0)
	}

	for attempt := 0; attempt < maxRestarts; attempt++ {
		if attempt > 0 {
			r = rng.Derive(r, uint64(attempt))
		}
		if positions, ok := backtrackSAW(n, r); ok {
			return conformation.New(positions), nil
		}
	}
	return nil, ErrSAWExhausted
}

// backtrackSAW attempts one full depth-first self-avoiding walk of length n
// using r for direction ordering. Returns ok=false if every branch from the
// root dead-ends.
func backtrackSAW(n int, r *rand.Rand) ([]lattice.Position, bool) {
	positions := make([]lattice.Position, 0, n)
	visited := make(map[lattice.Position]struct{}, n)

	start := lattice.Position{X: 0, Y: 0}
	positions = append(positions, start)
	visited[start] = struct{}{}

	var walk func() bool
	walk = func() bool {
		if len(positions) == n {
			return true
		}
		last := positions[len(positions)-1]
		dirs := lattice.ShuffledDirections(r)
		for _, d := range dirs {
			next := last.Step(d)
			if _, seen := visited[next]; seen {
				continue
			}
			positions = append(positions, next)
			visited[next] = struct{}{}
			if walk() {
				return true
			}
			// backtrack
			positions = positions[:len(positions)-1]
			delete(visited, next)
		}
		return false
	}

	if walk() {
		out := make([]lattice.Position, len(positions))
		copy(out, positions)
		return out, true
	}
	return nil, false
}
