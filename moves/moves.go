// Package moves implements the four local transformations of spec.md §4.3
// (end, corner, crankshaft, pull) and the move dispatcher M of §4.3's VSHD
// rule. Every move is a total, pure function from (conformation, residue
// index) to (applied bool, new conformation): if applied is false the
// returned conformation is the caller's original, never a partial mutation
// (spec.md P4).
package moves

import (
	"math/rand"

	"github.com/latticefold/hpremc/conformation"
)

// Result is the outcome of attempting a move.
type Result struct {
	// Applied reports whether the move changed the conformation.
	Applied bool
	// Conformation is the new conformation on Applied==true, or the
	// caller's original value unchanged on Applied==false.
	Conformation *conformation.Conformation
}

// unchanged builds the canonical "no move" result.
func unchanged(c *conformation.Conformation) Result {
	return Result{Applied: false, Conformation: c}
}

// applied builds the canonical "move succeeded" result. Under the "checked"
// build tag this asserts P4's postcondition (spec.md §7): a move may only
// ever report Applied==true over a conformation that is itself valid.
func applied(c *conformation.Conformation) Result {
	conformation.MustBeValid(c)
	return Result{Applied: true, Conformation: c}
}

// DefaultMaxPullRetries bounds the random L1/L2 tie-break retries a pull
// move attempts before giving up (spec.md §9 Open Question: "retry up to
// max_try random tie-breaks, then return not-applied").
const DefaultMaxPullRetries = 8

// Dispatch implements M(C, k, nu): with probability nu, attempt a pull
// move; otherwise dispatch through VSHD. r drives both the nu coin flip and
// every move's internal randomness (direction order, tie-breaks).
//
// Complexity: O(n) per call (conformation copy dominates).
func Dispatch(c *conformation.Conformation, k int, nu float64, r *rand.Rand) Result {
	if r.Float64() < nu {
		res := Pull(c, k, r, DefaultMaxPullRetries)
		if res.Applied {
			return res
		}
		// Pull reported no applicable move; VSHD is not a fallback per
		// spec.md §4.3 (the dispatcher picks one family per call), so a
		// failed pull attempt is itself a valid "no move" outcome.
		return unchanged(c)
	}
	return VSHD(c, k, r)
}

// VSHD implements the classical end/corner/crankshaft dispatch by residue
// position (spec.md §4.3):
//
//	k == 0 or k == n-1  -> end move
//	k == n-2            -> corner move
//	1 <= k <= n-3        -> fair coin between corner and crankshaft;
//	                        fall back to the other kind if the chosen one
//	                        is inapplicable; unchanged if neither applies.
func VSHD(c *conformation.Conformation, k int, r *rand.Rand) Result {
	n := c.Len()
	switch {
	case k == 0 || k == n-1:
		return End(c, k, r)
	case k == n-2:
		return Corner(c, k)
	case k >= 1 && k <= n-3:
		preferCorner := r.Intn(2) == 0
		corner := Corner(c, k)
		crankshaft := Crankshaft(c, k)
		if preferCorner {
			if corner.Applied {
				return corner
			}
			if crankshaft.Applied {
				return crankshaft
			}
		} else {
			if crankshaft.Applied {
				return crankshaft
			}
			if corner.Applied {
				return corner
			}
		}
		return unchanged(c)
	default:
		return unchanged(c)
	}
}
