package moves

import (
	"math/rand"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
)

// End implements the end move of spec.md §4.3: residue k must be a chain
// terminus (k == 0 or k == n-1). It is relocated to any lattice cell
// adjacent to its sole chain neighbor and not already occupied; among the
// (up to three) candidate cells, one is picked uniformly at random via r.
//
// Applies only at a terminus; otherwise reports Applied==false.
func End(c *conformation.Conformation, k int, r *rand.Rand) Result {
	n := c.Len()
	if n < 2 || (k != 0 && k != n-1) {
		return unchanged(c)
	}

	var neighborIdx int
	if k == 0 {
		neighborIdx = 1
	} else {
		neighborIdx = n - 2
	}
	anchor := c.At(neighborIdx)

	dirs := lattice.ShuffledDirections(r)
	for _, d := range dirs {
		candidate := anchor.Step(d)
		if candidate == c.At(k) {
			continue
		}
		if c.Occupied(candidate) {
			continue
		}
		next := c.With(k, candidate)
		if conformation.Valid(next) {
			return applied(next)
		}
	}
	return unchanged(c)
}
