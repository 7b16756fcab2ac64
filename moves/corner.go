package moves

import "github.com/latticefold/hpremc/conformation"

// Corner implements the corner move of spec.md §4.3: for an interior
// residue k (1 <= k <= n-2) whose neighbors k-1 and k+1 meet at a right
// angle, residue k is reflected to the square's fourth corner — the unique
// cell adjacent to both k-1 and k+1 other than k's current cell.
//
// Applies only when k-1, k, k+1 form a right angle (not a straight run) and
// the reflected cell is unoccupied; otherwise reports Applied==false.
func Corner(c *conformation.Conformation, k int) Result {
	n := c.Len()
	if k < 1 || k > n-2 {
		return unchanged(c)
	}
	prev, cur, next := c.At(k-1), c.At(k), c.At(k+1)

	reflected := prev.Add(next).Sub(cur)
	if reflected == cur {
		// prev, cur, next collinear: no corner to reflect across.
		return unchanged(c)
	}
	if c.Occupied(reflected) {
		return unchanged(c)
	}

	moved := c.With(k, reflected)
	if !conformation.Valid(moved) {
		return unchanged(c)
	}
	return applied(moved)
}
