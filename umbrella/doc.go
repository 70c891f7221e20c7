// Package umbrella runs biased ("umbrella sampling") Ising simulations that
// pin the magnetization near per-window targets, producing overlapping
// histograms on shared fixed bins for WHAM recombination.
//
// 🚀 What is umbrella?
//
//	The rare-event half of spinlab's sampling pipeline. A harmonic potential
//	U(m) = k·(m − m0)² forces each window to explore magnetizations that
//	unbiased sampling would essentially never visit, including the top of the
//	free-energy barrier between the ordered phases.
//
// ✨ Key features:
//   - shared fixed Binning across all windows — a hard requirement for WHAM
//   - UniformWindows helper tiling [-1, 1] with a shared spring constant
//   - embarrassingly parallel Run on an errgroup: every window owns its own
//     lattice and a SplitMix64-derived RNG stream, so results are
//     deterministic and independent of scheduling
//   - coverage-gap detection: target-adjacent windows with non-overlapping
//     occupied bins are flagged, never failed
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinlab/umbrella"
//
//	specs, _ := umbrella.UniformWindows(31, 400)
//	cfg := umbrella.Config{
//	  Base:    metropolis.Params{L: 10, T: 2.3, J: 1, EquilSweeps: 500, MeasureSweeps: 5000, Seed: 42},
//	  Windows: specs,
//	  Bins:    umbrella.DefaultBinning(),
//	  Parallelism: runtime.NumCPU(),
//	}
//	windows, err := umbrella.Run(ctx, cfg)
//
// Performance: each window costs O((n_eq + n_steps)·L²); windows scale out
// linearly across workers with zero synchronization.
package umbrella
