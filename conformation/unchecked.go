//go:build !checked

package conformation

// MustBeValid is a no-op outside the "checked" build (see checked.go).
func MustBeValid(c *Conformation) {}
