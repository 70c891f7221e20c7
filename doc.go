// Package spinlab is your in-memory playground for Monte Carlo simulation
// of the 2D Ising spin model — from the Metropolis lattice kernel to
// rare-event free-energy sampling.
//
// 🚀 What is spinlab?
//
//	A modern, deterministic, reproducible simulation library that brings together:
//		• Lattice primitives: L×L ±1 spin grids with periodic boundary conditions
//		• Metropolis sampler: detailed-balance single-flip kernel, optional field & bias
//		• Observables: magnetization, energy, spin-spin & column correlations
//		• Umbrella Sampling: harmonically biased windows pinned near target magnetizations
//		• WHAM: self-consistent reweighting of overlapping window histograms
//		• Onsager reference: exact spontaneous magnetization for comparison
//
// ✨ Why choose spinlab?
//
//   - Reproducible – every random stream is seed-derived; same seed ⇒ identical results
//   - Parallel-safe – windows and runs own independent lattices and RNG streams
//   - Rock-solid guarantees – validated configs, sentinel errors, explicit edge-case policies
//   - Extensible – swap the bias potential via a small interface
//
// Under the hood, everything is organized under five subpackages:
//
//	lattice/    — spin configuration & periodic neighbor topology
//	metropolis/ — simulation parameters, energy oracle & sweep kernel
//	observable/ — pure estimators over snapshots and sweep series
//	umbrella/   — biased sampling windows with shared fixed histogram bins
//	wham/       — weighted histogram analysis (unbiased P(m) recovery)
//
// Quick ASCII example:
//
//	    ↑ ↓ ↑ ↑
//	    ↑ ↑ ↓ ↑        a 4×4 spin lattice; edges wrap around,
//	    ↓ ↑ ↑ ↓        so every site has exactly four neighbors.
//	    ↑ ↓ ↑ ↑
//
// Next up: cluster updates (Wolff/Swendsen–Wang), 2D histogram reweighting and beyond.
//
//	go get github.com/katalvlaran/spinlab
package spinlab
