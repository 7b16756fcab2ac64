// Package energy computes the HP-model topological-contact energy of a
// conformation: the negative count of non-sequential H-H lattice contacts.
//
// E(C, S) = -|{(i,j) : i<j, S[i]=S[j]='H', j-i>1, Adjacent(C[i], C[j])}|
//
// Complexity: O(h^2) where h is the number of H residues in S. For the
// chain lengths this module targets (n <= 100) this is cheap enough to call
// on every accepted move; see SPEC_FULL.md §5 for the incremental-cache
// discussion permitted, but not required, by the spec.
package energy

import (
	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
)

// Count returns the energy of c under sequence hp. hp and c must have the
// same length; callers (mcsearch, remc) are expected to hold that
// invariant for the lifetime of a search, since it is fixed at setup.
//
// Complexity: O(h^2).
func Count(c *conformation.Conformation, hp string) int {
	hIndices := make([]int, 0, len(hp))
	for i := 0; i < len(hp); i++ {
		if hp[i] == 'H' {
			hIndices = append(hIndices, i)
		}
	}

	energy := 0
	for a := 0; a < len(hIndices); a++ {
		i := hIndices[a]
		for b := a + 1; b < len(hIndices); b++ {
			j := hIndices[b]
			if j-i <= 1 {
				continue
			}
			if lattice.Adjacent(c.At(i), c.At(j)) {
				energy--
			}
		}
	}
	return energy
}

// Bound returns the theoretical energy bound [lo, 0] for h hydrophobic
// residues: every H can be in topological contact with every other
// non-sequential H in the densest packing, giving lo = -h*(h-2)/2 for h>=2
// (0 for h<2). This matches spec.md property P6.
func Bound(h int) (lo, hi int) {
	if h < 2 {
		return 0, 0
	}
	return -(h * (h - 2)) / 2, 0
}
