package initconf_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/initconf"
	"github.com/latticefold/hpremc/lattice"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	c, err := initconf.Linear(5)
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())
	for i := 0; i < 5; i++ {
		require.Equal(t, lattice.Position{X: i, Y: 0}, c.At(i))
	}
	require.True(t, conformation.Valid(c))
}

func TestLinear_InvalidLength(t *testing.T) {
	_, err := initconf.Linear(0)
	require.True(t, errors.Is(err, initconf.ErrInvalidLength))
}

func TestRandomSAW_ValidAndCorrectLength(t *testing.T) {
	r := rand.New(rand.NewSource(123))
	c, err := initconf.RandomSAW(20, r, 0)
	require.NoError(t, err)
	require.Equal(t, 20, c.Len())
	require.True(t, conformation.Valid(c))
}

func TestRandomSAW_StartsAtOrigin(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	c, err := initconf.RandomSAW(10, r, 0)
	require.NoError(t, err)
	require.Equal(t, lattice.Position{X: 0, Y: 0}, c.At(0))
}

func TestRandomSAW_DeterministicGivenSeed(t *testing.T) {
	c1, err := initconf.RandomSAW(15, rand.New(rand.NewSource(55)), 0)
	require.NoError(t, err)
	c2, err := initconf.RandomSAW(15, rand.New(rand.NewSource(55)), 0)
	require.NoError(t, err)
	require.Equal(t, c1.Positions(), c2.Positions())
}

func TestRandomSAW_InvalidLength(t *testing.T) {
	_, err := initconf.RandomSAW(0, nil, 0)
	require.True(t, errors.Is(err, initconf.ErrInvalidLength))
}
