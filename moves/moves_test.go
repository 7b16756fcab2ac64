package moves_test

import (
	"math/rand"
	"testing"

	"github.com/latticefold/hpremc/conformation"
	"github.com/latticefold/hpremc/lattice"
	"github.com/latticefold/hpremc/moves"
	"github.com/stretchr/testify/require"
)

func conf(coords [][2]int) *conformation.Conformation {
	positions := make([]lattice.Position, len(coords))
	for i, xy := range coords {
		positions[i] = lattice.Position{X: xy[0], Y: xy[1]}
	}
	return conformation.New(positions)
}

// S3 from spec.md §8: end move relocates a chain terminus.
func TestEnd_RelocatesTerminus(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {2, 0}})
	r := rand.New(rand.NewSource(1))
	res := moves.End(c, 0, r)
	require.True(t, res.Applied)
	require.NotEqual(t, c.At(0), res.Conformation.At(0))
	require.True(t, lattice.Adjacent(res.Conformation.At(0), res.Conformation.At(1)))
	require.True(t, conformation.Valid(res.Conformation))
}

func TestEnd_InteriorResidueNotApplicable(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {2, 0}})
	res := moves.End(c, 1, rand.New(rand.NewSource(1)))
	require.False(t, res.Applied)
	require.Same(t, c, res.Conformation)
}

// S4 from spec.md §8: corner move flips an L-shaped triple.
func TestCorner_FlipsRightAngle(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {1, 1}})
	res := moves.Corner(c, 1)
	require.True(t, res.Applied)
	require.Equal(t, lattice.Position{X: 0, Y: 1}, res.Conformation.At(1))
	require.True(t, conformation.Valid(res.Conformation))
}

func TestCorner_CollinearNotApplicable(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {2, 0}})
	res := moves.Corner(c, 1)
	require.False(t, res.Applied)
}

func TestCorner_BlockedByOccupant(t *testing.T) {
	c := conf([][2]int{{0, 1}, {0, 0}, {1, 0}, {1, 1}})
	res := moves.Corner(c, 1)
	require.False(t, res.Applied)
}

// Crankshaft flips a minimal four-residue U-shaped bridge.
func TestCrankshaft_FlipsUShape(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	res := moves.Crankshaft(c, 1)
	require.True(t, res.Applied)
	require.Equal(t, lattice.Position{X: -1, Y: 0}, res.Conformation.At(1))
	require.Equal(t, lattice.Position{X: -1, Y: 1}, res.Conformation.At(2))
	require.True(t, conformation.Valid(res.Conformation))
}

func TestCrankshaft_NotUShapeNotApplicable(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	res := moves.Crankshaft(c, 1)
	require.False(t, res.Applied)
}

// S5 from spec.md §8, verbatim.
func TestCrankshaft_Scenario5(t *testing.T) {
	c := conf([][2]int{
		{2, -2}, {2, -1}, {2, 0}, {2, 1}, {1, 1},
		{1, 2}, {0, 2}, {0, 1}, {-1, 1}, {-1, 0},
	})
	res := moves.Crankshaft(c, 5)
	require.True(t, res.Applied)
	require.True(t, conformation.Valid(res.Conformation))
	for i := 0; i < c.Len(); i++ {
		if i == 5 || i == 6 {
			require.Equal(t, 2, lattice.L1(c.At(i), res.Conformation.At(i)))
			continue
		}
		require.Equal(t, c.At(i), res.Conformation.At(i))
	}
}

func TestPull_SingleResidueRelocation(t *testing.T) {
	// anchor(0,0) - cur(1,0) - next(1,1): pulling residue 1 to (0,1) keeps
	// residue 2 in place since (0,1)'s bridge cell is exactly C[2]. The
	// alternate candidate's bridge cell (1,-1) is occupied by residue 6, so
	// only the single-residue relocation is valid regardless of the
	// L1/L2 tie-break.
	c := conf([][2]int{
		{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 0}, {2, -1}, {1, -1},
	})
	r := rand.New(rand.NewSource(9))
	res := moves.Pull(c, 1, r, 8)
	require.True(t, res.Applied)
	require.True(t, conformation.Valid(res.Conformation))
	require.Equal(t, c.At(0), res.Conformation.At(0))
	require.Equal(t, lattice.Position{X: 0, Y: 1}, res.Conformation.At(1))
	require.Equal(t, c.At(2), res.Conformation.At(2))
}

func TestPull_EndpointNotApplicable(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {1, 1}})
	r := rand.New(rand.NewSource(1))
	res := moves.Pull(c, 0, r, 8)
	require.False(t, res.Applied)
}

// P4: every move is total and never returns a self-intersecting or
// disconnected conformation.
func TestMoves_TotalAndValidOnSuccess(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := conf([][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}, {-1, 2}, {-1, 1}})
	for k := 0; k < c.Len(); k++ {
		for _, res := range []moves.Result{
			moves.End(c, k, r),
			moves.Corner(c, k),
			moves.Crankshaft(c, k),
			moves.Pull(c, k, r, 8),
			moves.Dispatch(c, k, 0.5, r),
			moves.VSHD(c, k, r),
		} {
			require.Equal(t, c.Len(), res.Conformation.Len())
			if res.Applied {
				require.True(t, conformation.Valid(res.Conformation))
			} else {
				require.Same(t, c, res.Conformation)
			}
		}
	}
}

func TestDispatch_NuZeroNeverPulls(t *testing.T) {
	c := conf([][2]int{{0, 0}, {1, 0}, {2, 0}})
	r := rand.New(rand.NewSource(1))
	res := moves.Dispatch(c, 0, 0, r)
	// nu=0 always routes through VSHD; VSHD(end) should apply here.
	require.True(t, res.Applied)
}
