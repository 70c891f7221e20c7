// Package observable defines sentinel errors and the sample-series type for
// estimator computations.
package observable

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for estimator construction and finalization.
var (
	// ErrInvalidSeparation indicates a negative or out-of-range correlation separation.
	ErrInvalidSeparation = errors.New("observable: separation must lie in [0, L)")
	// ErrInvalidColumn indicates a column index outside [0, L).
	ErrInvalidColumn = errors.New("observable: column index out of range")
	// ErrNoObservations indicates finalization before any snapshot was observed.
	ErrNoObservations = errors.New("observable: no snapshots observed")
	// ErrEmptySeries indicates a moment requested from an empty series.
	ErrEmptySeries = errors.New("observable: series must be non-empty")
	// ErrSizeMismatch indicates a snapshot whose side length differs from the accumulator's.
	ErrSizeMismatch = errors.New("observable: lattice size does not match accumulator")
)

// Series is a time series of per-sweep samples (magnetization, energy, …).
// All moments are population moments (divide by n), matching the Monte Carlo
// estimator definitions.
type Series []float64

// Mean returns the arithmetic mean of the series.
// Complexity: O(n).
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}

	return stat.Mean(s, nil)
}

// MeanAbs returns the mean of absolute values, the spontaneous-order proxy
// ⟨|m|⟩. Complexity: O(n).
func (s Series) MeanAbs() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		if v < 0 {
			sum -= v
		} else {
			sum += v
		}
	}

	return sum / float64(len(s))
}

// Variance returns the population variance ⟨x²⟩ − ⟨x⟩².
// Complexity: O(n).
func (s Series) Variance() float64 {
	if len(s) == 0 {
		return 0
	}
	mean := stat.Mean(s, nil)

	return stat.MomentAbout(2, s, mean, nil)
}
