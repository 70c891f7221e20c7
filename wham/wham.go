package wham

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/spinlab/umbrella"
)

// WHAM — Weighted Histogram Analysis Method.
//
// Description:
//
//	WHAM recombines the biased magnetization histograms of overlapping
//	umbrella windows into a single unbiased probability profile P(m),
//	including in low-probability regions no unbiased run could sample.
//	The per-window free-energy offsets {f_i} and the combined profile are
//	mutually dependent, so the solve is a self-consistent iteration.
//
// Algorithm Outline:
//  1. Initialize f_i = 0 for every window (or warm-start offsets).
//  2. Combined estimate over every bin m:
//     P(m) = Σ_i c_i(m) / Σ_i n_i·exp[−(U_i(m) − f_i)/T]
//     with c_i the raw counts, n_i = Σ_m c_i(m), and the window bias
//     U_i(m) = k_i·(m − m0_i)². Bins with zero total count are excluded
//     from the normalization, not treated as zero probability — including
//     them would bias the ln-estimate. P is normalized by trapezoidal
//     integration over the bin centers.
//  3. Update f_i = −T·ln ∫ P(m)·exp[−U_i(m)/T] dm (trapezoid).
//  4. Repeat 2–3 until max_i |Δf_i| < Tolerance, or the iteration budget is
//     exhausted — in which case the best estimate is returned with
//     Converged=false, never an error.
//
// Numerical policies:
//   - denominators below a small epsilon leave the bin at P = 0 rather than
//     dividing by an underflowed sum;
//   - the offset integral is clamped by the same epsilon, so f_i stays finite
//     for a window whose occupied bins all fall outside its own bias support
//     (a coverage gap; such a window simply stops constraining the profile);
//   - FreeEnergy = −T·ln P is +Inf on excluded bins.
//
// Complexity:
//
//	Time   = O(Iterations · Windows · Bins)
//	Memory = O(Windows · Bins) for the precomputed bias weights
//
// Errors:
//   - ErrNoWindows / ErrBinningMismatch / ErrInvalidTemperature /
//     ErrBadOptions / ErrNoSamples — input validation only.

// denomEpsilon guards the combined-probability division and the offset
// logarithm against underflowed sums.
const denomEpsilon = 1e-30

// Solve recombines the window histograms accumulated on the shared bins into
// the unbiased probability profile over magnetization at temperature T.
// A nil opts selects DefaultOptions.
func Solve(windows []umbrella.Window, bins umbrella.Binning, temperature float64, opts *Options) (*Solution, error) {
	if len(windows) == 0 {
		return nil, ErrNoWindows
	}
	if err := bins.Validate(); err != nil {
		return nil, err
	}
	if temperature <= 0 || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return nil, ErrInvalidTemperature
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(len(windows)); err != nil {
		return nil, err
	}

	nw := len(windows)
	nb := bins.Bins
	centers := bins.Centers()
	beta := 1 / temperature

	// Per-window sample totals and total counts per bin.
	counts := make([]float64, nw)
	total := make([]float64, nb)
	for i, w := range windows {
		if len(w.Hist) != nb {
			return nil, ErrBinningMismatch
		}
		for m, c := range w.Hist {
			counts[i] += c
			total[m] += c
		}
	}
	grand := 0.0
	for _, c := range counts {
		grand += c
	}
	if grand == 0 {
		return nil, ErrNoSamples
	}

	// Precompute the Boltzmann bias weights exp(−U_i(m)/T) once; they are the
	// inner-loop factor of every iteration.
	biasW := make([][]float64, nw)
	for i, w := range windows {
		row := make([]float64, nb)
		for m, c := range centers {
			d := c - w.Spec.Target
			row[m] = math.Exp(-beta * w.Spec.SpringK * d * d)
		}
		biasW[i] = row
	}

	offsets := make([]float64, nw)
	if o.InitialOffsets != nil {
		copy(offsets, o.InitialOffsets)
	}
	next := make([]float64, nw)
	prob := make([]float64, nb)
	integrand := make([]float64, nb)

	iterations := 0
	converged := false
	for it := 1; it <= o.MaxIterations; it++ {
		iterations = it

		// Step 2: combined unbiased estimate per bin.
		for m := 0; m < nb; m++ {
			if total[m] == 0 {
				prob[m] = 0 // excluded, not zero-probability evidence

				continue
			}
			denom := 0.0
			for i := 0; i < nw; i++ {
				denom += counts[i] * math.Exp(beta*offsets[i]) * biasW[i][m]
			}
			if denom <= denomEpsilon {
				prob[m] = 0

				continue
			}
			prob[m] = total[m] / denom
		}
		norm := integrate.Trapezoidal(centers, prob)
		for m := range prob {
			prob[m] /= norm
		}

		// Step 3: refresh the per-window offsets from the new profile. The
		// epsilon keeps f_i finite when the integral underflows to zero (a
		// window that never sampled its own bias support).
		maxDelta := 0.0
		for i := 0; i < nw; i++ {
			for m := range integrand {
				integrand[m] = prob[m] * biasW[i][m]
			}
			next[i] = -temperature * math.Log(integrate.Trapezoidal(centers, integrand)+denomEpsilon)
			if d := math.Abs(next[i] - offsets[i]); d > maxDelta || math.IsNaN(d) {
				maxDelta = d
			}
		}
		copy(offsets, next)

		if maxDelta < o.Tolerance {
			converged = true

			break
		}
	}

	freeEnergy := make([]float64, nb)
	for m, p := range prob {
		if p > 0 {
			freeEnergy[m] = -temperature * math.Log(p)
		} else {
			freeEnergy[m] = math.Inf(1)
		}
	}

	out := &Solution{
		Centers:    centers,
		P:          append([]float64(nil), prob...),
		FreeEnergy: freeEnergy,
		Offsets:    append([]float64(nil), offsets...),
		Iterations: iterations,
		Converged:  converged,
	}

	return out, nil
}
