// Package lattice owns the spin configuration of the 2D Ising model.
//
// 🚀 What is lattice?
//
//	The leaf package of spinlab: an L×L grid of ±1 spins with periodic
//	boundary conditions, stored row-major for cache-friendly sweeps.
//
// ✨ Key features:
//   - random (seeded), uniform, or restart construction
//   - wrap-around NeighborSum — the local field of a single-flip proposal
//   - deep-copied Spins() dump and Clone() for independent parallel runs
//   - hard ±1 invariant: no intermediate spin values can ever be observed
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinlab/lattice"
//
//	rng := rand.New(rand.NewSource(42))
//	lat, err := lattice.New(20, rng)
//	if err != nil { ... }
//	nb := lat.NeighborSum(3, 7) // ∈ {-4,-2,0,2,4}
//	m := lat.Magnetization()    // per-site mean spin
//
// Performance:
//
//   - NeighborSum, At, Flip: O(1)
//   - construction, dump, clone, TotalSpin: O(L²)
//
// A Lattice is not goroutine-safe; every concurrent simulation owns its own.
package lattice
