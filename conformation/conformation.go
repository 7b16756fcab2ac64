// Package conformation models a chain conformation: a finite, ordered
// sequence of lattice positions, one per residue, held self-avoiding and
// chain-connected at every observable boundary.
//
// Invariants held outside a move's internal scratch (spec.md I1/I2):
//
//	I1  self-avoiding:    positions are pairwise distinct.
//	I2  chain-connected:  consecutive residues are unit-Manhattan neighbors.
//
// A Conformation owns its positions slice and occupancy index; callers that
// need a mutated copy use Clone or With, never in-place field writes, so
// that a rejected move can discard its scratch copy at no cost to the
// caller's original value (spec.md's "moves produce a new conformation
// value; the caller replaces its own").
package conformation

import (
	"errors"

	"github.com/latticefold/hpremc/lattice"
)

// Sentinel errors for conformation construction and validation.
var (
	// ErrEmpty indicates a conformation with zero residues was requested.
	ErrEmpty = errors.New("conformation: must have at least one residue")

	// ErrSelfIntersecting indicates two residues occupy the same position (I1).
	ErrSelfIntersecting = errors.New("conformation: positions are not pairwise distinct")

	// ErrDisconnected indicates two consecutive residues are not unit-adjacent (I2).
	ErrDisconnected = errors.New("conformation: consecutive residues are not lattice-adjacent")

	// ErrIndexOutOfRange indicates a residue index outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("conformation: residue index out of range")
)

// Conformation is an ordered, self-avoiding, chain-connected sequence of
// lattice positions. The zero value is not meaningful; build one with New.
type Conformation struct {
	positions []lattice.Position
	occupied  map[lattice.Position]int // position -> residue index, O(1) lookup
}

// New builds a Conformation from positions, indexed by residue number.
// It does not validate I1/I2 — use Valid(c) or Validate(positions) when the
// caller cannot already guarantee those invariants (e.g. external input);
// internal callers that construct positions incrementally and know they are
// valid (linear/random-SAW generators, accepted moves) skip the check to
// avoid doubling the O(n) or O(n^2) cost of validation on every accepted
// step.
//
// Complexity: O(n).
func New(positions []lattice.Position) *Conformation {
	occ := make(map[lattice.Position]int, len(positions))
	for i, p := range positions {
		occ[p] = i
	}
	return &Conformation{positions: positions, occupied: occ}
}

// Validate builds a Conformation from positions and returns an error if I1
// or I2 does not hold.
//
// Complexity: O(n).
func Validate(positions []lattice.Position) (*Conformation, error) {
	if len(positions) == 0 {
		return nil, ErrEmpty
	}
	occ := make(map[lattice.Position]int, len(positions))
	for i, p := range positions {
		if _, dup := occ[p]; dup {
			return nil, ErrSelfIntersecting
		}
		occ[p] = i
		if i > 0 && !lattice.Adjacent(positions[i-1], positions[i]) {
			return nil, ErrDisconnected
		}
	}
	return &Conformation{positions: positions, occupied: occ}, nil
}

// Valid reports whether c currently satisfies I1 (self-avoiding) and I2
// (chain-connected). New and With do not check I1, but the occupancy map
// cannot hold two residues at one position, so a repeated position leaves
// it with fewer entries than there are residues; Valid detects I1
// violations through that cardinality check and re-checks I2 directly,
// matching spec.md's `valid(C)` contract exactly.
//
// Complexity: O(n).
func Valid(c *Conformation) bool {
	if c == nil || len(c.positions) == 0 {
		return false
	}
	if len(c.occupied) != len(c.positions) {
		return false
	}
	for i := 1; i < len(c.positions); i++ {
		if !lattice.Adjacent(c.positions[i-1], c.positions[i]) {
			return false
		}
	}
	return true
}

// Len returns the number of residues.
func (c *Conformation) Len() int {
	return len(c.positions)
}

// At returns the lattice position of residue i.
func (c *Conformation) At(i int) lattice.Position {
	return c.positions[i]
}

// Occupant returns the residue index occupying p, if any.
func (c *Conformation) Occupant(p lattice.Position) (int, bool) {
	idx, ok := c.occupied[p]
	return idx, ok
}

// Occupied reports whether any residue currently occupies p.
func (c *Conformation) Occupied(p lattice.Position) bool {
	_, ok := c.occupied[p]
	return ok
}

// Positions returns a defensive copy of the residue positions, ordered by
// residue index.
//
// Complexity: O(n).
func (c *Conformation) Positions() []lattice.Position {
	out := make([]lattice.Position, len(c.positions))
	copy(out, c.positions)
	return out
}

// Clone returns an independent deep copy of c. Moves build their scratch
// conformation from Clone, mutate the copy, and either return it (accepted)
// or discard it (rejected) — the caller's original is never touched.
//
// Complexity: O(n).
func (c *Conformation) Clone() *Conformation {
	positions := make([]lattice.Position, len(c.positions))
	copy(positions, c.positions)
	occ := make(map[lattice.Position]int, len(c.occupied))
	for p, i := range c.occupied {
		occ[p] = i
	}
	return &Conformation{positions: positions, occupied: occ}
}

// With returns a copy of c with residue i relocated to p. It does not
// validate I1/I2; callers (moves) are expected to check feasibility (the
// target cell is unoccupied, the result stays chain-connected) before or
// after calling With, per each move's own contract.
//
// Complexity: O(n) (full-copy-on-write; see SPEC_FULL.md / DESIGN.md for the
// discussion of an in-place apply+undo-log optimization a production build
// might adopt at larger n).
func (c *Conformation) With(i int, p lattice.Position) *Conformation {
	cp := c.Clone()
	delete(cp.occupied, cp.positions[i])
	cp.positions[i] = p
	cp.occupied[p] = i
	return cp
}

// WithMany returns a copy of c with residues moved to new positions
// according to updates (residue index -> new position), applied atomically
// (all-or-nothing relocation of the occupancy index). Used by the
// crankshaft move (two residues) and the pull move's chain-drag (more than
// two residues).
//
// Complexity: O(n + len(updates)).
func (c *Conformation) WithMany(updates map[int]lattice.Position) *Conformation {
	cp := c.Clone()
	for i := range updates {
		delete(cp.occupied, cp.positions[i])
	}
	for i, p := range updates {
		cp.positions[i] = p
		cp.occupied[p] = i
	}
	return cp
}
