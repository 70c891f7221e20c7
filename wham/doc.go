// Package wham recombines biased umbrella-sampling histograms into one
// unbiased magnetization distribution via the Weighted Histogram Analysis
// Method — the numerically sensitive heart of the rare-event pipeline.
//
// 🚀 What is wham?
//
//	A self-consistent reweighting solve. Each umbrella window measured a
//	distorted piece of the true distribution; WHAM finds the per-window
//	free-energy offsets {f_i} that stitch the overlapping pieces into a
//	single profile P(m) spanning magnetizations no unbiased run could reach.
//
// ✨ Key features:
//   - exact bias model shared with the sampler: U_i(m) = k_i·(m − m0_i)²
//   - trapezoidal normalization and offset integrals (gonum/integrate)
//   - zero-weight bins excluded from normalization, never treated as
//     zero-probability evidence
//   - non-convergence is a flag on the returned Solution, never an error
//   - warm start from previous Offsets: a converged solution is a fixed
//     point and re-converges in one iteration
//   - SpontaneousMagnetization readout at the free-energy minimum
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinlab/wham"
//
//	windows, _ := umbrella.Run(ctx, cfg)
//	sol, err := wham.Solve(windows, cfg.Bins, cfg.Base.T, nil)
//	if err != nil { ... }
//	if !sol.Converged { /* retry with a larger budget or looser tolerance */ }
//	fmt.Println(sol.SpontaneousMagnetization())
//
// Performance: O(Iterations·Windows·Bins) time after an O(Windows·Bins)
// precomputation of the bias weights; the per-bin sums within one iteration
// are independent.
package wham
