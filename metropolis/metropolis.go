package metropolis

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spinlab/lattice"
)

// Metropolis — single-spin-flip Markov-chain Monte Carlo for the 2D Ising model.
//
// Description:
//
//	One sweep proposes L² single-spin flips (random sites or raster order).
//	Each proposal computes the energy delta of the flip and accepts it
//	unconditionally when ΔE ≤ 0, otherwise with probability exp(−ΔE/T).
//	The acceptance rule satisfies detailed balance, so the stationary
//	distribution is the Boltzmann distribution at temperature T, optionally
//	tilted by an umbrella bias potential over the magnetization.
//
// Algorithm Outline (one proposal):
//  1. Pick site (i, j).
//  2. ΔE = 2·s(i,j)·(J·NeighborSum(i,j) + h)
//     + U(m_after) − U(m_before)        (only when a bias is installed)
//  3. If ΔE ≤ 0: accept. Else accept with probability exp(−ΔE/T);
//     exp underflow for very large ΔE/T yields probability 0 (reject),
//     never an error.
//  4. On acceptance, flip the spin in place and update the running total spin.
//
// Complexity:
//
//	Time   = O(L²) per sweep, O((n_eq + n_steps)·L²) per run
//	Memory = O(L²) for the lattice; the sweep itself allocates nothing
//
// Errors:
//   - ErrInvalidSize / ErrInvalidTemperature / ErrNonFiniteCoupling /
//     ErrNonFiniteField / ErrInvalidSweeps / ErrUnknownSelection — from
//     Params.Validate, before any simulation work.

// FlipDelta returns the energy change ΔE = 2·s(i,j)·(J·nb + h) of flipping the
// spin at (i, j), where nb is the periodic four-neighbor sum. The factor 2
// arises because the flip reverses the sign of the spin's interaction term
// with every neighbor and of its field coupling. Pure function of state.
// Complexity: O(1).
func FlipDelta(lat *lattice.Lattice, i, j int, coupling, field float64) float64 {
	s := float64(lat.At(i, j))

	return 2 * s * (coupling*float64(lat.NeighborSum(i, j)) + field)
}

// TotalEnergy returns the energy of the whole configuration,
// E = −J·Σ s(i,j)·[s(i,j+1) + s(i+1,j)] − h·Σ s(i,j), with periodic wrap.
// Counting only the right and down neighbor of each site visits every bond of
// the periodic Hamiltonian exactly once (twice for the degenerate L=2 wrap,
// consistently with NeighborSum). Pure function of state.
// Complexity: O(L²).
func TotalEnergy(lat *lattice.Lattice, coupling, field float64) float64 {
	n := lat.Size()
	bonds := 0
	total := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := int(lat.At(i, j))
			total += s
			bonds += s * (int(lat.At(i, (j+1)%n)) + int(lat.At((i+1)%n, j)))
		}
	}

	return -coupling*float64(bonds) - field*float64(total)
}

// Sampler drives Metropolis sweeps over an exclusively owned lattice.
// It is deterministic given its seeded random source and is NOT goroutine-safe;
// parallel windows or runs each construct their own Sampler.
type Sampler struct {
	params Params
	beta   float64
	lat    *lattice.Lattice
	rng    *rand.Rand
	bias   Bias

	total    int // running Σ spins, updated incrementally on acceptance
	accepted uint64
	proposed uint64
}

// NewSampler validates p and constructs a sampler over a fresh random
// configuration drawn from the seeded stream (seed 0 selects the stable
// default stream). Complexity: O(L²).
func NewSampler(p Params) (*Sampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rng := NewRNG(p.Seed)
	lat, err := lattice.New(p.L, rng)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		params: p,
		beta:   1 / p.T,
		lat:    lat,
		rng:    rng,
		total:  lat.TotalSpin(),
	}, nil
}

// NewSamplerFrom validates p and restarts a sampler from a dumped
// configuration (see lattice.Lattice.Spins). The dump side length must match
// p.L. Complexity: O(L²).
func NewSamplerFrom(p Params, spins [][]lattice.Spin) (*Sampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(spins) != p.L {
		return nil, ErrInvalidSize
	}
	lat, err := lattice.NewFromSpins(spins)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		params: p,
		beta:   1 / p.T,
		lat:    lat,
		rng:    NewRNG(p.Seed),
		total:  lat.TotalSpin(),
	}, nil
}

// SetBias installs (or removes, with nil) an umbrella potential over the
// per-site magnetization. The bias enters every subsequent flip delta.
func (s *Sampler) SetBias(b Bias) { s.bias = b }

// Params returns the immutable run configuration.
func (s *Sampler) Params() Params { return s.params }

// Lattice exposes the sampler's lattice for read-only observation between
// sweeps. Callers must not mutate it; flips bypassing the sampler break the
// incremental total-spin bookkeeping.
func (s *Sampler) Lattice() *lattice.Lattice { return s.lat }

// Magnetization returns the current per-site magnetization in O(1), using the
// incrementally tracked total spin.
func (s *Sampler) Magnetization() float64 {
	return float64(s.total) / float64(s.lat.Sites())
}

// Energy returns the current total configuration energy.
// Complexity: O(L²).
func (s *Sampler) Energy() float64 {
	return TotalEnergy(s.lat, s.params.J, s.params.H)
}

// Acceptance returns the fraction of accepted proposals so far (0 before any
// proposal).
func (s *Sampler) Acceptance() float64 {
	if s.proposed == 0 {
		return 0
	}

	return float64(s.accepted) / float64(s.proposed)
}

// propose evaluates one single-spin flip at (i, j) and applies it when the
// Metropolis rule accepts.
func (s *Sampler) propose(i, j int) {
	s.proposed++
	spin := int(s.lat.At(i, j))
	dE := 2 * float64(spin) * (s.params.J*float64(s.lat.NeighborSum(i, j)) + s.params.H)
	if s.bias != nil {
		sites := float64(s.lat.Sites())
		mBefore := float64(s.total) / sites
		mAfter := float64(s.total-2*spin) / sites
		dE += s.bias.Delta(mBefore, mAfter)
	}
	// math.Exp underflows to 0 for very large βΔE: certain rejection, by policy.
	if dE > 0 && s.rng.Float64() >= math.Exp(-s.beta*dE) {
		return
	}
	s.lat.Flip(i, j)
	s.total -= 2 * spin
	s.accepted++
}

// Sweep performs one Monte Carlo sweep: L² flip proposals, at uniformly random
// sites (RandomSites) or in row-major order (RasterScan). Deterministic for a
// fixed seed. Complexity: O(L²), allocation-free.
func (s *Sampler) Sweep() {
	n := s.lat.Size()
	if s.params.Selection == RasterScan {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				s.propose(i, j)
			}
		}

		return
	}
	for k := 0; k < n*n; k++ {
		s.propose(s.rng.Intn(n), s.rng.Intn(n))
	}
}

// Equilibrate runs the configured number of equilibration sweeps, discarding
// all samples. Complexity: O(n_eq·L²).
func (s *Sampler) Equilibrate() {
	for k := 0; k < s.params.EquilSweeps; k++ {
		s.Sweep()
	}
}

// Run equilibrates, then performs the configured measurement sweeps, recording
// one per-site magnetization and one total-energy sample per sweep. The
// returned snapshot is independent of the sampler and safe to aggregate
// downstream. Complexity: O((n_eq + n_steps)·L²).
func (s *Sampler) Run() *RunResult {
	s.Equilibrate()

	steps := s.params.MeasureSweeps
	samples := make([]float64, 0, steps)
	energies := make([]float64, 0, steps)
	sumM, sumAbsM := 0.0, 0.0
	for k := 0; k < steps; k++ {
		s.Sweep()
		m := s.Magnetization()
		samples = append(samples, m)
		energies = append(energies, s.Energy())
		sumM += m
		sumAbsM += math.Abs(m)
	}

	res := &RunResult{
		Samples:       samples,
		EnergySamples: energies,
		Acceptance:    s.Acceptance(),
		FinalSpins:    s.lat.Spins(),
	}
	if steps > 0 {
		res.MeanMagnetization = sumM / float64(steps)
		res.MeanAbsMagnetization = sumAbsM / float64(steps)
	}

	return res
}
