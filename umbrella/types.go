// Package umbrella defines window specifications, the shared histogram
// binning, sentinel errors and result types for umbrella sampling.
package umbrella

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spinlab/metropolis"
)

// Sentinel errors for umbrella sampling configuration.
var (
	// ErrInvalidBinning indicates a binning with Min >= Max, non-finite edges
	// or fewer than two bins.
	ErrInvalidBinning = errors.New("umbrella: binning must have finite Min < Max and at least 2 bins")
	// ErrNoWindows indicates an empty window list.
	ErrNoWindows = errors.New("umbrella: at least one window is required")
	// ErrTargetOutOfRange indicates a window target outside [-1, 1].
	ErrTargetOutOfRange = errors.New("umbrella: window target must lie in [-1, 1]")
	// ErrInvalidSpring indicates a negative or non-finite spring constant.
	ErrInvalidSpring = errors.New("umbrella: spring constant must be non-negative and finite")
	// ErrInvalidParallelism indicates a negative worker limit.
	ErrInvalidParallelism = errors.New("umbrella: parallelism must be non-negative")
)

// Binning is the fixed histogram geometry over the per-site magnetization,
// shared by every window. Identical bin edges across windows are a hard
// requirement: WHAM can only combine histograms accumulated on the same grid.
type Binning struct {
	// Min and Max are the inclusive magnetization range, typically [-1, 1].
	Min, Max float64
	// Bins is the number of equal-width bins (>= 2).
	Bins int
}

// DefaultBinning covers the full magnetization range [-1, 1] with 101 bins.
func DefaultBinning() Binning {
	return Binning{Min: -1, Max: 1, Bins: 101}
}

// Validate reports the first geometry error, or nil.
// Complexity: O(1).
func (b Binning) Validate() error {
	if math.IsNaN(b.Min) || math.IsInf(b.Min, 0) || math.IsNaN(b.Max) || math.IsInf(b.Max, 0) {
		return ErrInvalidBinning
	}
	if b.Min >= b.Max || b.Bins < 2 {
		return ErrInvalidBinning
	}

	return nil
}

// Width returns the bin width (Max − Min) / Bins.
// Complexity: O(1).
func (b Binning) Width() float64 {
	return (b.Max - b.Min) / float64(b.Bins)
}

// Centers returns the Bins bin midpoints, evenly spaced from Min+Width/2 to
// Max−Width/2. Complexity: O(Bins).
func (b Binning) Centers() []float64 {
	half := b.Width() / 2

	return floats.Span(make([]float64, b.Bins), b.Min+half, b.Max-half)
}

// Index maps a magnetization sample to its bin, clamping samples outside
// [Min, Max] to the edge bins. Complexity: O(1).
func (b Binning) Index(m float64) int {
	idx := int((m - b.Min) / b.Width())
	if idx < 0 {
		return 0
	}
	if idx >= b.Bins {
		return b.Bins - 1
	}

	return idx
}

// WindowSpec pins one biased simulation near a target magnetization through
// the harmonic potential U(m) = SpringK·(m − Target)².
type WindowSpec struct {
	// Target is the window center m0 ∈ [-1, 1] (per-site magnetization).
	Target float64
	// SpringK is the spring constant k, in per-site magnetization units.
	SpringK float64
}

// Validate reports the first specification error, or nil.
// Complexity: O(1).
func (w WindowSpec) Validate() error {
	if math.IsNaN(w.Target) || w.Target < -1 || w.Target > 1 {
		return ErrTargetOutOfRange
	}
	if math.IsNaN(w.SpringK) || math.IsInf(w.SpringK, 0) || w.SpringK < 0 {
		return ErrInvalidSpring
	}

	return nil
}

// UniformWindows returns n window specs with targets evenly spanning [-1, 1]
// and a shared spring constant. Returns ErrNoWindows for n < 2 (a single
// window cannot tile the range). Complexity: O(n).
func UniformWindows(n int, springK float64) ([]WindowSpec, error) {
	if n < 2 {
		return nil, ErrNoWindows
	}
	if math.IsNaN(springK) || math.IsInf(springK, 0) || springK < 0 {
		return nil, ErrInvalidSpring
	}
	targets := floats.Span(make([]float64, n), -1, 1)
	specs := make([]WindowSpec, n)
	for i, m0 := range targets {
		specs[i] = WindowSpec{Target: m0, SpringK: springK}
	}

	return specs, nil
}

// Config drives a full umbrella sampling campaign: one biased simulation per
// window, all sharing the base parameters and the histogram binning.
type Config struct {
	// Base holds the lattice/temperature/sweep configuration shared by every
	// window. Base.Seed seeds the campaign; each window derives its own
	// independent stream from it.
	Base metropolis.Params
	// Windows lists the biased windows, typically from UniformWindows.
	Windows []WindowSpec
	// Bins is the histogram geometry shared by all windows.
	Bins Binning
	// Parallelism caps the number of windows simulated concurrently;
	// 0 means no limit.
	Parallelism int
}

// Validate reports the first configuration error, or nil.
// Complexity: O(len(Windows)).
func (c Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if len(c.Windows) == 0 {
		return ErrNoWindows
	}
	for _, w := range c.Windows {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	if err := c.Bins.Validate(); err != nil {
		return err
	}
	if c.Parallelism < 0 {
		return ErrInvalidParallelism
	}

	return nil
}

// Window is the outcome of one biased simulation: the magnetization histogram
// accumulated on the shared bins. Independent of all other windows except
// through the WHAM combination step.
type Window struct {
	// Spec is the window specification that produced this histogram.
	Spec WindowSpec
	// Hist holds one count per shared bin (float64 so analytic window sets can
	// be fed to the solver in tests and reweighting pipelines).
	Hist []float64
	// Samples is the number of recorded sweeps, Σ Hist.
	Samples int
	// CoverageGap flags a window whose occupied bins do not overlap one of its
	// neighbors' — a degraded-WHAM warning, never an error.
	CoverageGap bool
}
