// Package metropolis defines simulation parameters, the bias-potential
// contract, sentinel errors and result types for the Metropolis sampler.
package metropolis

import (
	"errors"
	"math"

	"github.com/katalvlaran/spinlab/lattice"
)

// Sentinel errors for sampler configuration. Validation fails fast, before
// any simulation work begins.
var (
	// ErrInvalidSize indicates a non-positive lattice side length.
	ErrInvalidSize = errors.New("metropolis: lattice size must be positive")
	// ErrInvalidTemperature indicates T <= 0 or a non-finite temperature.
	ErrInvalidTemperature = errors.New("metropolis: temperature must be positive and finite")
	// ErrNonFiniteCoupling indicates a NaN or infinite coupling constant J.
	ErrNonFiniteCoupling = errors.New("metropolis: coupling constant must be finite")
	// ErrNonFiniteField indicates a NaN or infinite external field h.
	ErrNonFiniteField = errors.New("metropolis: external field must be finite")
	// ErrInvalidSweeps indicates a negative equilibration or measurement sweep count.
	ErrInvalidSweeps = errors.New("metropolis: sweep counts must be non-negative")
	// ErrUnknownSelection indicates an unrecognized site-selection mode.
	ErrUnknownSelection = errors.New("metropolis: unknown site selection mode")
)

// SiteSelection chooses how the sweep visits sites.
type SiteSelection int

const (
	// RandomSites proposes L² flips at uniformly random sites per sweep.
	// This is the classic Metropolis dynamics and the default.
	RandomSites SiteSelection = iota
	// RasterScan proposes one flip per site in row-major order per sweep.
	RasterScan
)

// Params is the immutable per-run configuration shared read-only by the
// lattice, the energy oracle and the sampler.
//
// Fields:
//   - L             — lattice side length (> 0)
//   - T             — temperature (> 0, finite)
//   - J             — coupling constant (finite; J > 0 is ferromagnetic)
//   - H             — external field (finite)
//   - EquilSweeps   — equilibration sweeps, discarded (>= 0)
//   - MeasureSweeps — measurement sweeps, sampled (>= 0)
//   - Seed          — RNG seed; 0 selects the stable default stream
//   - Selection     — RandomSites (default) or RasterScan
type Params struct {
	L             int
	T             float64
	J             float64
	H             float64
	EquilSweeps   int
	MeasureSweeps int
	Seed          int64
	Selection     SiteSelection
}

// Validate reports the first configuration error, or nil.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.L <= 0 {
		return ErrInvalidSize
	}
	if p.T <= 0 || math.IsNaN(p.T) || math.IsInf(p.T, 0) {
		return ErrInvalidTemperature
	}
	if math.IsNaN(p.J) || math.IsInf(p.J, 0) {
		return ErrNonFiniteCoupling
	}
	if math.IsNaN(p.H) || math.IsInf(p.H, 0) {
		return ErrNonFiniteField
	}
	if p.EquilSweeps < 0 || p.MeasureSweeps < 0 {
		return ErrInvalidSweeps
	}
	if p.Selection != RandomSites && p.Selection != RasterScan {
		return ErrUnknownSelection
	}

	return nil
}

// Bias is an umbrella potential U(m) over the per-site magnetization m.
// Delta must equal Energy(mAfter) - Energy(mBefore); it is kept separate so
// the hot loop avoids recomputing shared subexpressions.
type Bias interface {
	// Energy returns U(m).
	Energy(m float64) float64
	// Delta returns U(mAfter) − U(mBefore) for a proposed flip.
	Delta(mBefore, mAfter float64) float64
}

// HarmonicBias is the umbrella spring U(m) = SpringK·(m − Target)² pinning
// sampling near the per-site target magnetization of a window.
type HarmonicBias struct {
	// SpringK is the spring constant k (per-site magnetization units).
	SpringK float64
	// Target is the window center m0 ∈ [-1, 1].
	Target float64
}

// Energy returns k·(m − m0)².
// Complexity: O(1).
func (b HarmonicBias) Energy(m float64) float64 {
	d := m - b.Target

	return b.SpringK * d * d
}

// Delta returns k·[(mAfter − m0)² − (mBefore − m0)²].
// Complexity: O(1).
func (b HarmonicBias) Delta(mBefore, mAfter float64) float64 {
	return b.Energy(mAfter) - b.Energy(mBefore)
}

// RunResult is the observable snapshot of one measurement run. It is never
// mutated after creation; downstream aggregation treats it as read-only.
type RunResult struct {
	// MeanMagnetization is the per-site magnetization averaged over all
	// measurement sweeps (the equilibration transient is discarded).
	MeanMagnetization float64
	// MeanAbsMagnetization averages |m| per sweep, the spontaneous-order proxy.
	MeanAbsMagnetization float64
	// Samples holds one per-site magnetization sample per measurement sweep.
	Samples []float64
	// EnergySamples holds one total lattice energy sample per measurement sweep.
	EnergySamples []float64
	// Acceptance is the fraction of accepted proposals over the whole run.
	Acceptance float64
	// FinalSpins is a deep-copied dump of the final configuration, usable for
	// restart via lattice.NewFromSpins.
	FinalSpins [][]lattice.Spin
}
