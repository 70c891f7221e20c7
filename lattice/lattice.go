// Package lattice provides the L×L spin configuration of the 2D Ising model
// together with its periodic-neighbor topology. It supports:
//
//   - Random or restart (explicit) initial configurations
//   - Wrap-around (periodic boundary) neighbor sums
//   - In-place single-spin flips with incremental bookkeeping left to callers
//   - Deep-copied dumps for restart and independent clones for parallel runs
//
// A Lattice is exclusively owned by the simulation driving it and is NOT
// goroutine-safe; concurrent windows or runs must each hold their own copy.
package lattice

import "math/rand"

// Lattice is a square L×L grid of ±1 spins with periodic boundary conditions.
// Spins are stored row-major in a single slice for cache-friendly traversal.
type Lattice struct {
	size  int
	spins []Spin
}

// New constructs an L×L lattice with every site drawn uniformly from {-1,+1}
// using rng. Returns ErrInvalidSize if L <= 0 and ErrNilRand if rng is nil.
// Complexity: O(L²) time and memory.
func New(size int, rng *rand.Rand) (*Lattice, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	lat := &Lattice{size: size, spins: make([]Spin, size*size)}
	for i := range lat.spins {
		if rng.Intn(2) == 0 {
			lat.spins[i] = Down
		} else {
			lat.spins[i] = Up
		}
	}

	return lat, nil
}

// NewUniform constructs an L×L lattice with every site set to s.
// Returns ErrInvalidSize if L <= 0 and ErrInvalidSpin if s is not ±1.
// Complexity: O(L²).
func NewUniform(size int, s Spin) (*Lattice, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if s != Up && s != Down {
		return nil, ErrInvalidSpin
	}
	lat := &Lattice{size: size, spins: make([]Spin, size*size)}
	for i := range lat.spins {
		lat.spins[i] = s
	}

	return lat, nil
}

// NewFromSpins restores a lattice from a previously dumped configuration.
// It deep-copies the input to ensure exclusive ownership.
// Returns ErrInvalidSize for an empty grid, ErrNonSquare if any row length
// differs from the row count, ErrInvalidSpin if any value is not ±1.
// Complexity: O(L²).
func NewFromSpins(spins [][]Spin) (*Lattice, error) {
	size := len(spins)
	if size == 0 {
		return nil, ErrInvalidSize
	}
	lat := &Lattice{size: size, spins: make([]Spin, size*size)}
	for i, row := range spins {
		if len(row) != size {
			return nil, ErrNonSquare
		}
		for j, s := range row {
			if s != Up && s != Down {
				return nil, ErrInvalidSpin
			}
			lat.spins[i*size+j] = s
		}
	}

	return lat, nil
}

// Size returns the side length L.
// Complexity: O(1).
func (lat *Lattice) Size() int { return lat.size }

// Sites returns the total number of sites, L².
// Complexity: O(1).
func (lat *Lattice) Sites() int { return lat.size * lat.size }

// At returns the spin at row i, column j. Indices must lie in [0, L).
// Complexity: O(1).
func (lat *Lattice) At(i, j int) Spin {
	return lat.spins[i*lat.size+j]
}

// Flip negates the spin at (i, j) in place.
// Complexity: O(1).
func (lat *Lattice) Flip(i, j int) {
	lat.spins[i*lat.size+j] = -lat.spins[i*lat.size+j]
}

// NeighborSum returns the sum of the four periodic nearest-neighbor spins of
// site (i, j): (i±1 mod L, j±1 mod L). This is the local field entering the
// single-flip energy delta. For L == 2 opposite neighbors coincide and are
// counted twice, consistent with the periodic Hamiltonian.
// Complexity: O(1).
func (lat *Lattice) NeighborSum(i, j int) int {
	n := lat.size
	up := lat.spins[((i-1+n)%n)*n+j]
	down := lat.spins[((i+1)%n)*n+j]
	left := lat.spins[i*n+(j-1+n)%n]
	right := lat.spins[i*n+(j+1)%n]

	return int(up) + int(down) + int(left) + int(right)
}

// TotalSpin returns Σ s(i,j) over all sites.
// Complexity: O(L²).
func (lat *Lattice) TotalSpin() int {
	total := 0
	for _, s := range lat.spins {
		total += int(s)
	}

	return total
}

// Magnetization returns the per-site mean spin, TotalSpin / L².
// Complexity: O(L²).
func (lat *Lattice) Magnetization() float64 {
	return float64(lat.TotalSpin()) / float64(lat.Sites())
}

// Spins dumps the configuration as a deep-copied [L][L] slice, suitable for
// restart via NewFromSpins. The dump never aliases internal state.
// Complexity: O(L²).
func (lat *Lattice) Spins() [][]Spin {
	out := make([][]Spin, lat.size)
	for i := 0; i < lat.size; i++ {
		out[i] = make([]Spin, lat.size)
		copy(out[i], lat.spins[i*lat.size:(i+1)*lat.size])
	}

	return out
}

// Clone returns an independent deep copy, for use by parallel windows or runs.
// Complexity: O(L²).
func (lat *Lattice) Clone() *Lattice {
	spins := make([]Spin, len(lat.spins))
	copy(spins, lat.spins)

	return &Lattice{size: lat.size, spins: spins}
}
