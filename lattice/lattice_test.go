package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinlab/lattice"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects bad sizes and nil sources.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		rng  *rand.Rand
		err  error
	}{
		{"ZeroSize", 0, rand.New(rand.NewSource(1)), lattice.ErrInvalidSize},
		{"NegativeSize", -3, rand.New(rand.NewSource(1)), lattice.ErrInvalidSize},
		{"NilRand", 4, nil, lattice.ErrNilRand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.New(tc.size, tc.rng)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_SpinInvariant checks that every randomly initialized site is ±1.
func TestNew_SpinInvariant(t *testing.T) {
	lat, err := lattice.New(16, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < lat.Size(); i++ {
		for j := 0; j < lat.Size(); j++ {
			s := lat.At(i, j)
			assert.True(t, s == lattice.Up || s == lattice.Down,
				"site (%d,%d) holds invalid spin %d", i, j, s)
		}
	}
}

// TestNewFromSpins_Errors verifies restart validation.
func TestNewFromSpins_Errors(t *testing.T) {
	cases := []struct {
		name  string
		spins [][]lattice.Spin
		err   error
	}{
		{"Empty", [][]lattice.Spin{}, lattice.ErrInvalidSize},
		{"Ragged", [][]lattice.Spin{{1, -1}, {1}}, lattice.ErrNonSquare},
		{"NotSquare", [][]lattice.Spin{{1, -1, 1}, {1, 1, -1}}, lattice.ErrNonSquare},
		{"BadSpin", [][]lattice.Spin{{1, 0}, {-1, 1}}, lattice.ErrInvalidSpin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewFromSpins(tc.spins)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSpins_RoundTrip checks dump → restore reproduces the configuration
// and that the dump does not alias internal state.
func TestSpins_RoundTrip(t *testing.T) {
	orig, err := lattice.New(8, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	dump := orig.Spins()
	restored, err := lattice.NewFromSpins(dump)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, orig.At(i, j), restored.At(i, j))
		}
	}

	// Mutating the dump must not leak into the lattice.
	dump[0][0] = -dump[0][0]
	assert.NotEqual(t, dump[0][0], orig.At(0, 0))
}

//----------------------------------------------------------------------------//
// Topology Tests
//----------------------------------------------------------------------------//

// TestNeighborSum_Periodic verifies wrap-around indexing at a corner site.
func TestNeighborSum_Periodic(t *testing.T) {
	// 3×3 all-up lattice with a single down spin at (0,0).
	spins := [][]lattice.Spin{
		{-1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	lat, err := lattice.NewFromSpins(spins)
	require.NoError(t, err)

	// Neighbors of (0,0) are (2,0), (1,0), (0,2), (0,1) — all up.
	assert.Equal(t, 4, lat.NeighborSum(0, 0))
	// Neighbors of (1,1) are all up as well.
	assert.Equal(t, 4, lat.NeighborSum(1, 1))
	// (0,1) sees the down spin at (0,0): 3·(+1) + (-1) = 2.
	assert.Equal(t, 2, lat.NeighborSum(0, 1))
	// (2,0) wraps up to (0,0): 3·(+1) + (-1) = 2.
	assert.Equal(t, 2, lat.NeighborSum(2, 0))
}

// TestNeighborSum_DoubleCounting checks the L=2 degenerate wrap: opposite
// neighbors coincide and contribute twice.
func TestNeighborSum_DoubleCounting(t *testing.T) {
	spins := [][]lattice.Spin{
		{1, -1},
		{1, 1},
	}
	lat, err := lattice.NewFromSpins(spins)
	require.NoError(t, err)

	// Neighbors of (0,0): row neighbors both (1,0)=+1, column neighbors both (0,1)=-1.
	assert.Equal(t, 0, lat.NeighborSum(0, 0))
	// Neighbors of (1,1): both (0,1)=-1 vertically, both (1,0)=+1 horizontally.
	assert.Equal(t, 0, lat.NeighborSum(1, 1))
}

// TestFlipAndMagnetization exercises Flip, TotalSpin and Magnetization.
func TestFlipAndMagnetization(t *testing.T) {
	lat, err := lattice.NewUniform(4, lattice.Up)
	require.NoError(t, err)
	assert.Equal(t, 16, lat.TotalSpin())
	assert.Equal(t, 1.0, lat.Magnetization())

	lat.Flip(2, 3)
	assert.Equal(t, lattice.Down, lat.At(2, 3))
	assert.Equal(t, 14, lat.TotalSpin())
	assert.InDelta(t, 14.0/16.0, lat.Magnetization(), 1e-15)
}

// TestClone_Independence verifies that clones do not share storage.
func TestClone_Independence(t *testing.T) {
	lat, err := lattice.NewUniform(4, lattice.Down)
	require.NoError(t, err)

	cp := lat.Clone()
	cp.Flip(0, 0)
	assert.Equal(t, lattice.Down, lat.At(0, 0))
	assert.Equal(t, lattice.Up, cp.At(0, 0))
}
