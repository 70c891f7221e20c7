// Package wham defines solver options, sentinel errors and the solution type
// for the Weighted Histogram Analysis Method.
package wham

import (
	"errors"
	"math"
)

// Sentinel errors for solver input validation.
var (
	// ErrNoWindows indicates an empty window set.
	ErrNoWindows = errors.New("wham: at least one window is required")
	// ErrBinningMismatch indicates a window histogram whose length differs
	// from the shared binning.
	ErrBinningMismatch = errors.New("wham: window histogram does not match the shared binning")
	// ErrInvalidTemperature indicates T <= 0 or a non-finite temperature.
	ErrInvalidTemperature = errors.New("wham: temperature must be positive and finite")
	// ErrBadOptions indicates a non-positive tolerance or iteration budget, or
	// initial offsets of the wrong length.
	ErrBadOptions = errors.New("wham: invalid solver options")
	// ErrNoSamples indicates that every bin of every window is empty.
	ErrNoSamples = errors.New("wham: window histograms contain no samples")
)

// Options configures the self-consistent solve.
//
// Fields:
//   - Tolerance      — convergence threshold on max_i |Δf_i| per iteration.
//   - MaxIterations  — iteration budget; exhausting it returns the best
//     estimate with Converged=false, never an error.
//   - InitialOffsets — optional warm-start free-energy offsets, one per
//     window (nil starts from zero). A converged solution restarted from its
//     own Offsets re-converges in a single iteration.
type Options struct {
	Tolerance      float64
	MaxIterations  int
	InitialOffsets []float64
}

// DefaultOptions returns the standard solve configuration:
// tolerance 1e-6, at most 5000 iterations, cold start.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-6, MaxIterations: 5000}
}

// validate reports the first option error for a solve over n windows.
func (o Options) validate(n int) error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		return ErrBadOptions
	}
	if o.MaxIterations <= 0 {
		return ErrBadOptions
	}
	if o.InitialOffsets != nil && len(o.InitialOffsets) != n {
		return ErrBadOptions
	}

	return nil
}

// Solution is the combined unbiased estimate over the shared magnetization
// bins. Frozen once returned; the solver never retains references to it.
type Solution struct {
	// Centers are the shared bin midpoints the profile is defined on.
	Centers []float64
	// P is the unbiased probability density over Centers, normalized by
	// trapezoidal integration. Bins with zero total weight hold 0 and are
	// excluded from the normalization rather than treated as zero-probability
	// evidence.
	P []float64
	// FreeEnergy is −T·ln P per bin; +Inf on zero-weight bins.
	FreeEnergy []float64
	// Offsets are the converged per-window free-energy shifts f_i.
	Offsets []float64
	// Iterations is the number of self-consistency iterations performed.
	Iterations int
	// Converged reports whether max_i |Δf_i| fell below the tolerance within
	// the iteration budget. A false value still carries the best estimate.
	Converged bool
}

// SpontaneousMagnetization returns |m| at the free-energy minimum, the
// umbrella-sampling estimate of the spontaneous order parameter. Returns NaN
// when every bin is empty. Complexity: O(Bins).
func (s *Solution) SpontaneousMagnetization() float64 {
	best := -1
	for i, f := range s.FreeEnergy {
		if math.IsInf(f, 1) {
			continue
		}
		if best < 0 || f < s.FreeEnergy[best] {
			best = i
		}
	}
	if best < 0 {
		return math.NaN()
	}

	return math.Abs(s.Centers[best])
}
