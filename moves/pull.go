package moves

import (
	"math/rand"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
)

// Pull implements the pull move of spec.md §4.3 (Lesh, Mitzenmacher &
// Whitesides' LMW move): residue k is relocated to a lattice cell diagonal
// to its current one and adjacent to its k-1 neighbor, dragging the rest of
// the chain behind it two indices at a time until the drag reconnects with
// the untouched tail or runs off the chain end. The backward variant is the
// same procedure applied to the reversed chain.
//
// Geometry is grounded in the two candidate corner cells L1/L2 (each
// adjacent to C[k-1] and diagonal to C[k]) and their matching bridge cells
// C1/C2 (each adjacent to both the candidate L and C[k]); spec.md §9
// resolves the L1/L2 ambiguity with a bounded number of random tie-break
// retries, maxTry (<= 0 selects DefaultMaxPullRetries).
func Pull(c *conformation.Conformation, k int, r *rand.Rand, maxTry int) Result {
	if maxTry <= 0 {
		maxTry = DefaultMaxPullRetries
	}
	for attempt := 0; attempt < maxTry; attempt++ {
		preferL1 := r.Intn(2) == 0
		if res := pullForward(c, k, preferL1); res.Applied {
			return res
		}
		if res := pullBackward(c, k, preferL1); res.Applied {
			return res
		}
	}
	return unchanged(c)
}

// pullBackward applies pullForward to the reversed chain at the mirrored
// index, then reverses the result back.
func pullBackward(c *conformation.Conformation, k int, preferL1 bool) Result {
	n := c.Len()
	reversed := reverse(c)
	res := pullForward(reversed, n-1-k, preferL1)
	if !res.Applied {
		return unchanged(c)
	}
	return applied(reverse(res.Conformation))
}

func reverse(c *conformation.Conformation) *conformation.Conformation {
	n := c.Len()
	positions := make([]lattice.Position, n)
	for i := 0; i < n; i++ {
		positions[i] = c.At(n - 1 - i)
	}
	return conformation.New(positions)
}

// pullForward requires both C[k-1] and C[k+1] to exist.
func pullForward(c *conformation.Conformation, k int, preferL1 bool) Result {
	n := c.Len()
	if k < 1 || k > n-2 {
		return unchanged(c)
	}

	anchor := c.At(k - 1)
	cur := c.At(k)
	nxt := c.At(k + 1)

	// L1/L2: the two cells adjacent to anchor and diagonal to cur.
	// C1/C2: the matching bridge cell, adjacent to both its L and cur.
	dx, dy := cur.X-anchor.X, cur.Y-anchor.Y
	l1 := lattice.Position{X: anchor.X + dy, Y: anchor.Y + dx}
	l2 := lattice.Position{X: anchor.X - dy, Y: anchor.Y - dx}

	step := cur.Sub(anchor)
	bridge := func(l lattice.Position) lattice.Position {
		// the bridge cell completes the unit square {anchor, l, bridge, cur}
		return l.Add(step)
	}
	cand1 := bridge(l1)
	cand2 := bridge(l2)

	try := func(l, bridgeCell lattice.Position) Result {
		if c.Occupied(l) {
			return unchanged(c)
		}
		if bridgeCell == nxt {
			// single-residue relocation: k+1 is already in place.
			moved := c.With(k, l)
			if conformation.Valid(moved) {
				return applied(moved)
			}
			return unchanged(c)
		}
		if c.Occupied(bridgeCell) {
			return unchanged(c)
		}
		return dragChain(c, k, l, bridgeCell)
	}

	first, second := cand1, cand2
	firstL, secondL := l1, l2
	if !preferL1 {
		first, second = cand2, cand1
		firstL, secondL = l2, l1
	}
	if res := try(firstL, first); res.Applied {
		return res
	}
	return try(secondL, second)
}

// dragChain places residue k at l and residue k+1 at bridgeCell, then
// propagates the pull down the chain: residue j (j >= k+2) takes the
// pre-move position of residue j-2, stopping once j's own pre-move position
// is already adjacent to the new position of j-1 (the tail has reconnected)
// or the chain end is reached.
func dragChain(c *conformation.Conformation, k int, l, bridgeCell lattice.Position) Result {
	n := c.Len()
	old := c.Positions()
	updates := map[int]lattice.Position{k: l, k + 1: bridgeCell}
	prev := bridgeCell
	for j := k + 2; j < n; j++ {
		if lattice.Adjacent(old[j], prev) {
			break
		}
		updates[j] = old[j-2]
		prev = old[j-2]
	}
	moved := c.WithMany(updates)
	if !conformation.Valid(moved) {
		return unchanged(c)
	}
	return applied(moved)
}
