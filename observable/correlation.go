package observable

import "github.com/katalvlaran/spinlab/lattice"

// Spin-spin correlation estimators.
//
// Definition (documented once, applied identically everywhere):
//
//	raw        G(r) = ⟨ s(i,j)·s(i+r,j) ⟩
//	connected  C(r) = ⟨ s(i,j)·s(i+r,j) ⟩ − ⟨m⟩·⟨s(i+r,j)⟩
//
// Separations are vertical (row shifts) under the wrap distance of the
// periodic lattice: the partner of row i at separation r is row (i+r) mod L,
// so G(r) = G(L−r) and the sign of the shift direction is immaterial.
// Column-specific estimators restrict the same sums to one fixed column and
// use the connected form C(r) = ⟨s_i·s_{i+r}⟩ − ⟨m⟩².

// PairCorrelation returns the raw snapshot correlation
// G(r) = (1/L²)·Σ s(i,j)·s((i+r) mod L, j). Pure function of state.
// Complexity: O(L²).
func PairCorrelation(lat *lattice.Lattice, r int) (float64, error) {
	n := lat.Size()
	if r < 0 || r >= n {
		return 0, ErrInvalidSeparation
	}
	sum := 0
	for i := 0; i < n; i++ {
		partner := (i + r) % n
		for j := 0; j < n; j++ {
			sum += int(lat.At(i, j)) * int(lat.At(partner, j))
		}
	}

	return float64(sum) / float64(n*n), nil
}

// ColumnPairCorrelation returns the raw snapshot correlation restricted to one
// column: G_col(r) = (1/L)·Σ_i s(i,col)·s((i+r) mod L, col). Pure function of
// state. Complexity: O(L).
func ColumnPairCorrelation(lat *lattice.Lattice, col, r int) (float64, error) {
	n := lat.Size()
	if col < 0 || col >= n {
		return 0, ErrInvalidColumn
	}
	if r < 0 || r >= n {
		return 0, ErrInvalidSeparation
	}
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(lat.At(i, col)) * int(lat.At((i+r)%n, col))
	}

	return float64(sum) / float64(n), nil
}

// CorrelationAccumulator averages the spin-spin correlation over a sequence of
// lattice snapshots (one per measurement sweep) for separations r = 0..MaxR.
// It never mutates the observed lattice.
type CorrelationAccumulator struct {
	size     int
	maxR     int
	observed int
	sumM     float64
	sumPair  []float64
	sumShift []float64
}

// NewCorrelationAccumulator prepares an accumulator for an L×L lattice.
// maxR == 0 selects the default L/2; otherwise maxR must lie in [1, L).
// Complexity: O(maxR).
func NewCorrelationAccumulator(size, maxR int) (*CorrelationAccumulator, error) {
	if size <= 0 {
		return nil, lattice.ErrInvalidSize
	}
	if maxR == 0 {
		maxR = size / 2
	}
	if maxR < 0 || maxR >= size {
		return nil, ErrInvalidSeparation
	}

	return &CorrelationAccumulator{
		size:     size,
		maxR:     maxR,
		sumPair:  make([]float64, maxR+1),
		sumShift: make([]float64, maxR+1),
	}, nil
}

// MaxSeparation returns the largest accumulated separation.
func (c *CorrelationAccumulator) MaxSeparation() int { return c.maxR }

// Observe accumulates one snapshot. Complexity: O(maxR·L²).
func (c *CorrelationAccumulator) Observe(lat *lattice.Lattice) error {
	n := lat.Size()
	if n != c.size {
		return ErrSizeMismatch
	}
	sites := float64(n * n)
	c.observed++
	c.sumM += lat.Magnetization()

	for r := 0; r <= c.maxR; r++ {
		pair, shift := 0, 0
		for i := 0; i < n; i++ {
			partner := (i + r) % n
			for j := 0; j < n; j++ {
				sj := int(lat.At(partner, j))
				pair += int(lat.At(i, j)) * sj
				shift += sj
			}
		}
		c.sumPair[r] += float64(pair) / sites
		c.sumShift[r] += float64(shift) / sites
	}

	return nil
}

// MeanMagnetization returns ⟨m⟩ over the observed snapshots.
func (c *CorrelationAccumulator) MeanMagnetization() (float64, error) {
	if c.observed == 0 {
		return 0, ErrNoObservations
	}

	return c.sumM / float64(c.observed), nil
}

// Raw returns the sweep-averaged raw correlation G(r) for r = 0..MaxR.
func (c *CorrelationAccumulator) Raw() ([]float64, error) {
	if c.observed == 0 {
		return nil, ErrNoObservations
	}
	steps := float64(c.observed)
	out := make([]float64, c.maxR+1)
	for r := range out {
		out[r] = c.sumPair[r] / steps
	}

	return out, nil
}

// Connected returns the sweep-averaged connected correlation
// C(r) = ⟨s_i·s_{i+r}⟩ − ⟨m⟩·⟨s_{i+r}⟩ for r = 0..MaxR.
func (c *CorrelationAccumulator) Connected() ([]float64, error) {
	if c.observed == 0 {
		return nil, ErrNoObservations
	}
	steps := float64(c.observed)
	meanM := c.sumM / steps
	out := make([]float64, c.maxR+1)
	for r := range out {
		out[r] = c.sumPair[r]/steps - meanM*(c.sumShift[r]/steps)
	}

	return out, nil
}

// ColumnCorrelationAccumulator averages the spin-spin correlation within one
// fixed column over a sequence of snapshots, using the same wrap distance as
// the general estimator.
type ColumnCorrelationAccumulator struct {
	size     int
	col      int
	maxR     int
	observed int
	sumM     float64
	sumPair  []float64
}

// NewColumnCorrelationAccumulator prepares a per-column accumulator.
// maxR == 0 selects the default L/2. Complexity: O(maxR).
func NewColumnCorrelationAccumulator(size, col, maxR int) (*ColumnCorrelationAccumulator, error) {
	if size <= 0 {
		return nil, lattice.ErrInvalidSize
	}
	if col < 0 || col >= size {
		return nil, ErrInvalidColumn
	}
	if maxR == 0 {
		maxR = size / 2
	}
	if maxR < 0 || maxR >= size {
		return nil, ErrInvalidSeparation
	}

	return &ColumnCorrelationAccumulator{
		size:    size,
		col:     col,
		maxR:    maxR,
		sumPair: make([]float64, maxR+1),
	}, nil
}

// Observe accumulates one snapshot. Complexity: O(maxR·L).
func (c *ColumnCorrelationAccumulator) Observe(lat *lattice.Lattice) error {
	n := lat.Size()
	if n != c.size {
		return ErrSizeMismatch
	}
	c.observed++
	c.sumM += lat.Magnetization()

	for r := 0; r <= c.maxR; r++ {
		pair := 0
		for i := 0; i < n; i++ {
			pair += int(lat.At(i, c.col)) * int(lat.At((i+r)%n, c.col))
		}
		c.sumPair[r] += float64(pair) / float64(n)
	}

	return nil
}

// Connected returns C(r) = ⟨s_i·s_{i+r}⟩_col − ⟨m⟩² for r = 0..MaxR.
func (c *ColumnCorrelationAccumulator) Connected() ([]float64, error) {
	if c.observed == 0 {
		return nil, ErrNoObservations
	}
	steps := float64(c.observed)
	meanM := c.sumM / steps
	out := make([]float64, c.maxR+1)
	for r := range out {
		out[r] = c.sumPair[r]/steps - meanM*meanM
	}

	return out, nil
}

// MeanMagnetization returns ⟨m⟩ over the observed snapshots.
func (c *ColumnCorrelationAccumulator) MeanMagnetization() (float64, error) {
	if c.observed == 0 {
		return 0, ErrNoObservations
	}

	return c.sumM / float64(c.observed), nil
}
