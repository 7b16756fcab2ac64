// Package hpstring validates and inspects HP sequences: finite strings over
// the alphabet {H, P} describing a hydrophobic/polar residue chain.
//
// Compact notations (e.g. "P3H2P2H2", "(PH)3") are expanded outside this
// module into a plain {H,P}* string before it ever reaches this package or
// any other in this repository.
package hpstring

import "errors"

// Residue symbols.
const (
	H = 'H'
	P = 'P'
)

// Sentinel errors for HP-sequence validation.
var (
	// ErrTooShort indicates the sequence has fewer than two residues.
	ErrTooShort = errors.New("hpstring: sequence must have length >= 2")

	// ErrInvalidSymbol indicates a character outside {H, P}.
	ErrInvalidSymbol = errors.New("hpstring: symbol outside {H, P}")
)

// Validate reports whether s is a well-formed HP sequence: length >= 2 and
// every rune in {H, P}. It is the caller's responsibility to invoke Validate
// before passing s to any search entry point (mcsearch.Search, remc.Run,
// parallel.Ensemble, parallel.IntraRun all reject invalid sequences the same
// way).
//
// Complexity: O(n).
func Validate(s string) error {
	if len(s) < 2 {
		return ErrTooShort
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case H, P:
		default:
			return ErrInvalidSymbol
		}
	}
	return nil
}

// CountH returns the number of H residues in s. Callers typically use this
// together with the energy bound h*(h-2)/2 from the energy package.
func CountH(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == H {
			n++
		}
	}
	return n
}

// IsH reports whether the residue at index i is hydrophobic.
func IsH(s string, i int) bool {
	return s[i] == H
}
