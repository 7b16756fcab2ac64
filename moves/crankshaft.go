package moves

import (
	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
)

// Crankshaft implements the crankshaft move of spec.md §4.3: for an
// interior residue k (1 <= k <= n-3), the four residues k-1, k, k+1, k+2
// must form a U-shaped bridge — k-1 and k+2 adjacent, with k and k+1
// bulging out one step to the same side. Residues k and k+1 are reflected
// across the k-1/k+2 axis, with k-1 and k+2 held fixed.
//
// Applies only when the four residues form this U shape and the reflected
// cells are unoccupied; otherwise reports Applied==false.
func Crankshaft(c *conformation.Conformation, k int) Result {
	n := c.Len()
	if k < 1 || k > n-3 {
		return unchanged(c)
	}
	a, b, cc, d := c.At(k-1), c.At(k), c.At(k+1), c.At(k+2)

	if !lattice.Adjacent(a, d) {
		return unchanged(c)
	}
	u := b.Sub(a)
	v := d.Sub(a)
	if u.X*v.X+u.Y*v.Y != 0 {
		// not perpendicular: no bridge to flip
		return unchanged(c)
	}
	if cc != a.Add(u).Add(v) {
		return unchanged(c)
	}

	newB := a.Sub(u)
	newC := d.Sub(u)
	if newB == b && newC == cc {
		return unchanged(c)
	}

	moved := c.WithMany(map[int]lattice.Position{k: newB, k + 1: newC})
	if !conformation.Valid(moved) {
		return unchanged(c)
	}
	return applied(moved)
}
