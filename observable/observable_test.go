package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spinlab/metropolis"
	"github.com/katalvlaran/spinlab/observable"
)

//----------------------------------------------------------------------------//
// Series & Response Function Tests
//----------------------------------------------------------------------------//

// TestSeries_Moments checks mean, absolute mean and population variance.
func TestSeries_Moments(t *testing.T) {
	s := observable.Series{1, 2, 3}
	assert.InDelta(t, 2.0, s.Mean(), 1e-15)
	assert.InDelta(t, 2.0/3.0, s.Variance(), 1e-15)

	signed := observable.Series{-1, 2, -3}
	assert.InDelta(t, 2.0, signed.MeanAbs(), 1e-15)
	assert.InDelta(t, -2.0/3.0, signed.Mean(), 1e-15)

	empty := observable.Series{}
	assert.Equal(t, 0.0, empty.Mean())
	assert.Equal(t, 0.0, empty.MeanAbs())
	assert.Equal(t, 0.0, empty.Variance())
}

// TestResponseFunctions checks the fluctuation-dissipation formulas on
// hand-computed series.
func TestResponseFunctions(t *testing.T) {
	m := observable.Series{0.5, -0.5} // variance 0.25
	assert.InDelta(t, 2.0, observable.Susceptibility(m, 2.0, 16), 1e-15)

	e := observable.Series{0, 4} // variance 4
	assert.InDelta(t, 0.25, observable.SpecificHeat(e, 2.0, 4), 1e-15)
}

//----------------------------------------------------------------------------//
// Onsager Reference Tests
//----------------------------------------------------------------------------//

// TestCriticalTemperature checks T_c = 2J/ln(1+√2) ≈ 2.269 J.
func TestCriticalTemperature(t *testing.T) {
	assert.InDelta(t, 2.269185, observable.CriticalTemperature(1.0), 1e-6)
	assert.InDelta(t, 2*2.269185, observable.CriticalTemperature(2.0), 1e-5)
}

// TestExactMagnetization checks limiting behavior and a reference value.
func TestExactMagnetization(t *testing.T) {
	// Deep in the ordered phase the magnetization saturates.
	assert.InDelta(t, 1.0, observable.ExactMagnetization(0.1, 1.0), 1e-12)
	// Known value at T = 1.0, J = 1.0.
	assert.InDelta(t, 0.99928, observable.ExactMagnetization(1.0, 1.0), 1e-4)
	// Vanishes at and above T_c.
	tc := observable.CriticalTemperature(1.0)
	assert.Equal(t, 0.0, observable.ExactMagnetization(tc, 1.0))
	assert.Equal(t, 0.0, observable.ExactMagnetization(3.0, 1.0))

	// Monotone decrease toward T_c.
	prev := 1.0
	for _, temp := range []float64{0.5, 1.0, 1.5, 2.0, 2.2} {
		m := observable.ExactMagnetization(temp, 1.0)
		assert.Less(t, m, prev, "m(T) must decrease, T=%v", temp)
		prev = m
	}
}

//----------------------------------------------------------------------------//
// Measurement Driver Tests
//----------------------------------------------------------------------------//

// TestMeasureMagnetization_FieldAligns verifies that a strong external field
// polarizes the lattice along the field.
func TestMeasureMagnetization_FieldAligns(t *testing.T) {
	p := metropolis.Params{L: 8, T: 2.0, J: 1.0, H: 2.0, EquilSweeps: 500, MeasureSweeps: 500, Seed: 17}
	m, err := observable.MeasureMagnetization(p)
	assert.NoError(t, err)
	assert.Greater(t, m, 0.9)

	p.H = -2.0
	m, err = observable.MeasureMagnetization(p)
	assert.NoError(t, err)
	assert.Less(t, m, -0.9)
}

// TestMeasureAbsMagnetization_HighT verifies ⟨|m|⟩ is small but positive in
// the disordered phase.
func TestMeasureAbsMagnetization_HighT(t *testing.T) {
	p := metropolis.Params{L: 16, T: 50.0, J: 1.0, EquilSweeps: 100, MeasureSweeps: 500, Seed: 23}
	m, err := observable.MeasureAbsMagnetization(p)
	assert.NoError(t, err)
	assert.Greater(t, m, 0.0)
	assert.Less(t, m, 0.2)
}

// TestDrivers_ZeroSweeps verifies the shared zero-sweep convention: a valid
// configuration with no measurement sweeps yields ErrNoObservations from every
// driver rather than a silent zero estimate.
func TestDrivers_ZeroSweeps(t *testing.T) {
	p := metropolis.Params{L: 4, T: 2.0, J: 1.0, EquilSweeps: 5, Seed: 2}

	_, err := observable.MeasureMagnetization(p)
	assert.ErrorIs(t, err, observable.ErrNoObservations)
	_, err = observable.MeasureAbsMagnetization(p)
	assert.ErrorIs(t, err, observable.ErrNoObservations)
	_, _, err = observable.SpinStats(p, 0)
	assert.ErrorIs(t, err, observable.ErrNoObservations)
	_, _, err = observable.ColumnCorrelation(p, 0, 0)
	assert.ErrorIs(t, err, observable.ErrNoObservations)
}

// TestDrivers_InvalidConfig verifies that configuration errors surface before
// any simulation work.
func TestDrivers_InvalidConfig(t *testing.T) {
	bad := metropolis.Params{L: 8, T: -1, J: 1.0}

	_, err := observable.MeasureMagnetization(bad)
	assert.ErrorIs(t, err, metropolis.ErrInvalidTemperature)

	_, _, err = observable.SpinStats(bad, 0)
	assert.ErrorIs(t, err, metropolis.ErrInvalidTemperature)

	_, _, err = observable.ColumnCorrelation(bad, 0, 0)
	assert.ErrorIs(t, err, metropolis.ErrInvalidTemperature)
}
