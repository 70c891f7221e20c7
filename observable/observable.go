package observable

// Response functions derived from sweep-averaged series, following the
// fluctuation-dissipation relations of the Ising model.

// Susceptibility returns the magnetic susceptibility per site,
// χ = N·(⟨m²⟩ − ⟨m⟩²)/T, from a per-site magnetization series over a lattice
// of N = L² sites. Returns 0 for an empty series.
// Complexity: O(n).
func Susceptibility(m Series, temperature float64, sites int) float64 {
	return float64(sites) * m.Variance() / temperature
}

// SpecificHeat returns the specific heat per site,
// C = (⟨E²⟩ − ⟨E⟩²)/(N·T²), from a total-energy series over a lattice of
// N = L² sites. Returns 0 for an empty series.
// Complexity: O(n).
func SpecificHeat(e Series, temperature float64, sites int) float64 {
	return e.Variance() / (float64(sites) * temperature * temperature)
}
