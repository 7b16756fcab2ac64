//go:build checked

package conformation

import "fmt"

// MustBeValid panics with a diagnostic if c does not satisfy I1
// (self-avoiding) and I2 (chain-connected). Compiled only under the
// "checked" build tag (go test -tags checked ./...), per spec.md §7: a
// detected invariant violation inside the move/search core is a programmer
// error, never a recoverable condition, so the checked build aborts loudly
// instead of silently propagating a corrupt conformation. Release builds
// omit this check entirely (see unchecked.go) since every move already
// reports infeasibility through its own Applied=false return.
func MustBeValid(c *Conformation) {
	if !Valid(c) {
		panic(fmt.Sprintf("conformation: invariant violated: %+v", c))
	}
}
