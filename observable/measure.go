package observable

import "github.com/katalvlaran/spinlab/metropolis"

// Per-run measurement drivers. Each owns an independent sampler (lattice +
// seeded random stream), so distinct runs — e.g. different grid points — may
// execute concurrently with zero shared state. A configuration with zero
// measurement sweeps carries no estimate: every driver returns
// ErrNoObservations for it.

// MeasureMagnetization runs one full simulation and returns the sweep-averaged
// per-site magnetization ⟨m⟩, discarding the equilibration transient.
// Complexity: O((n_eq + n_steps)·L²).
func MeasureMagnetization(p metropolis.Params) (float64, error) {
	s, err := metropolis.NewSampler(p)
	if err != nil {
		return 0, err
	}
	if p.MeasureSweeps == 0 {
		return 0, ErrNoObservations
	}

	return s.Run().MeanMagnetization, nil
}

// MeasureAbsMagnetization runs one full simulation and returns ⟨|m|⟩, the
// spontaneous-magnetization estimator that is insensitive to global sign flips
// of the finite lattice. Complexity: O((n_eq + n_steps)·L²).
func MeasureAbsMagnetization(p metropolis.Params) (float64, error) {
	s, err := metropolis.NewSampler(p)
	if err != nil {
		return 0, err
	}
	if p.MeasureSweeps == 0 {
		return 0, ErrNoObservations
	}

	return s.Run().MeanAbsMagnetization, nil
}

// SpinStats runs one full simulation and returns ⟨m⟩ together with the
// connected spin-spin correlation C(r) for r = 0..maxR (maxR == 0 selects
// L/2). Complexity: O(n_eq·L² + n_steps·maxR·L²).
func SpinStats(p metropolis.Params, maxR int) (float64, []float64, error) {
	s, err := metropolis.NewSampler(p)
	if err != nil {
		return 0, nil, err
	}
	acc, err := NewCorrelationAccumulator(p.L, maxR)
	if err != nil {
		return 0, nil, err
	}

	s.Equilibrate()
	for k := 0; k < p.MeasureSweeps; k++ {
		s.Sweep()
		if err = acc.Observe(s.Lattice()); err != nil {
			return 0, nil, err
		}
	}

	meanM, err := acc.MeanMagnetization()
	if err != nil {
		return 0, nil, err
	}
	corr, err := acc.Connected()
	if err != nil {
		return 0, nil, err
	}

	return meanM, corr, nil
}

// ColumnCorrelation runs one full simulation and returns ⟨m⟩ together with the
// connected correlation within the fixed column col for r = 0..maxR
// (maxR == 0 selects L/2). Complexity: O(n_eq·L² + n_steps·(L² + maxR·L)).
func ColumnCorrelation(p metropolis.Params, col, maxR int) (float64, []float64, error) {
	s, err := metropolis.NewSampler(p)
	if err != nil {
		return 0, nil, err
	}
	acc, err := NewColumnCorrelationAccumulator(p.L, col, maxR)
	if err != nil {
		return 0, nil, err
	}

	s.Equilibrate()
	for k := 0; k < p.MeasureSweeps; k++ {
		s.Sweep()
		if err = acc.Observe(s.Lattice()); err != nil {
			return 0, nil, err
		}
	}

	meanM, err := acc.MeanMagnetization()
	if err != nil {
		return 0, nil, err
	}
	corr, err := acc.Connected()
	if err != nil {
		return 0, nil, err
	}

	return meanM, corr, nil
}
