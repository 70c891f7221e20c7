// Package metropolis implements the Metropolis Monte Carlo kernel for the
// 2D Ising model: the single-flip energy oracle and the sweep-driving Sampler.
//
// 🚀 What is metropolis?
//
//	The performance-critical path of spinlab. A Sampler owns one lattice and
//	one seeded random stream and mutates the lattice in place through
//	detailed-balance-preserving single-spin flips.
//
// ✨ Key features:
//   - exact single-flip energy delta: ΔE = 2·s·(J·nb + h)
//   - optional umbrella Bias over the per-site magnetization, O(1) per proposal
//     thanks to incremental total-spin tracking
//   - RandomSites (classic) or RasterScan site selection, both deterministic
//     with respect to the seed
//   - exp(−ΔE/T) underflow treated as certain rejection, never an error
//   - seedable, swappable randomness: NewRNG + DeriveSeed for parallel-safe
//     independent streams (no language-global generator anywhere)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinlab/metropolis"
//
//	p := metropolis.Params{
//	  L: 20, T: 2.0, J: 1.0, H: 0,
//	  EquilSweeps: 1000, MeasureSweeps: 5000,
//	  Seed: 42,
//	}
//	s, err := metropolis.NewSampler(p)
//	if err != nil { ... } // configuration rejected before any work
//	res := s.Run()
//	fmt.Println(res.MeanMagnetization)
//
// Performance:
//
//   - Time:   O(L²) per sweep; the sweep loop is allocation-free
//   - Memory: O(L²)
//
// Determinism: identical Params (including Seed) ⇒ bit-for-bit identical
// results. Reproducing a run requires recording the seed only.
package metropolis
