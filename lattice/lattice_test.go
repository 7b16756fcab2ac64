package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/latticefold/hpremc/lattice"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	p := lattice.Position{X: 1, Y: 1}
	require.Equal(t, lattice.Position{X: 1, Y: 2}, p.Step(lattice.North))
	require.Equal(t, lattice.Position{X: 1, Y: 0}, p.Step(lattice.South))
	require.Equal(t, lattice.Position{X: 2, Y: 1}, p.Step(lattice.East))
	require.Equal(t, lattice.Position{X: 0, Y: 1}, p.Step(lattice.West))
}

func TestAddSub(t *testing.T) {
	p := lattice.Position{X: 3, Y: -2}
	q := lattice.Position{X: 1, Y: 1}
	require.Equal(t, lattice.Position{X: 4, Y: -1}, p.Add(q))
	require.Equal(t, lattice.Position{X: 2, Y: -3}, p.Sub(q))
}

func TestL1AndAdjacent(t *testing.T) {
	require.Equal(t, 1, lattice.L1(lattice.Position{X: 0, Y: 0}, lattice.Position{X: 1, Y: 0}))
	require.Equal(t, 2, lattice.L1(lattice.Position{X: 0, Y: 0}, lattice.Position{X: 1, Y: 1}))

	require.True(t, lattice.Adjacent(lattice.Position{X: 0, Y: 0}, lattice.Position{X: 0, Y: 1}))
	require.False(t, lattice.Adjacent(lattice.Position{X: 0, Y: 0}, lattice.Position{X: 0, Y: 0}))
	require.False(t, lattice.Adjacent(lattice.Position{X: 0, Y: 0}, lattice.Position{X: 1, Y: 1}))
}

func TestShuffledDirections_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	dirs := lattice.ShuffledDirections(r)

	seen := map[lattice.Direction]bool{}
	for _, d := range dirs {
		seen[d] = true
	}
	require.Len(t, seen, 4)
	for _, d := range lattice.AllDirections {
		require.True(t, seen[d])
	}
}

func TestShuffledDirections_NilIsCanonical(t *testing.T) {
	require.Equal(t, lattice.AllDirections, lattice.ShuffledDirections(nil))
}
