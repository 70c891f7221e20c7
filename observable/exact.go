package observable

import "math"

// Onsager's exact solution of the 2D Ising model on the square lattice,
// used as the reference curve for comparing Monte Carlo and WHAM estimates.

// CriticalTemperature returns the exact critical temperature of the square
// lattice, T_c = 2J / ln(1 + √2). Assumes ferromagnetic coupling J > 0.
// Complexity: O(1).
func CriticalTemperature(coupling float64) float64 {
	return 2 * coupling / math.Log(1+math.Sqrt2)
}

// ExactMagnetization returns Onsager's spontaneous magnetization of the
// infinite square lattice,
//
//	m(T) = (1 + z²)^¼ · (1 − 6z² + z⁴)^⅛ · (1 − z²)^(−½),  z = exp(−2J/T),
//
// for T below T_c, and 0 at or above T_c. Assumes J > 0.
// Complexity: O(1).
func ExactMagnetization(temperature, coupling float64) float64 {
	if temperature >= CriticalTemperature(coupling) {
		return 0
	}
	z := math.Exp(-2 * coupling / temperature)
	z2 := z * z

	return math.Pow(1+z2, 0.25) *
		math.Pow(1-6*z2+z2*z2, 0.125) /
		math.Sqrt(1-z2)
}
