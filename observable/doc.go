// Package observable computes estimators over Ising lattice snapshots and
// sweep-averaged sample series: magnetization, response functions, spin-spin
// correlations and the exact Onsager reference.
//
// 🚀 What is observable?
//
//	The read-only half of spinlab. Every estimator is pure: snapshots are
//	observed, never mutated, and accumulators only aggregate.
//
// ✨ Key features:
//   - Series moments (mean, ⟨|m|⟩, population variance) for per-sweep samples
//   - susceptibility χ = N·(⟨m²⟩−⟨m⟩²)/T and specific heat C = (⟨E²⟩−⟨E⟩²)/(N·T²)
//   - raw and connected spin-spin correlation at any wrap separation r,
//     with C(r) = C(L−r) by periodicity
//   - column-specific correlation restricted to one fixed column
//   - per-run measurement drivers mirroring a complete simulation
//     (equilibrate, measure, estimate) with an independent sampler per run
//   - Onsager's exact m(T) and T_c for reference comparison
//
// Correlation convention: the connected form C(r) = ⟨s_i·s_{i+r}⟩ − ⟨m⟩·⟨s_{i+r}⟩
// (per-column: ⟨s_i·s_{i+r}⟩ − ⟨m⟩²) is used by all sweep-averaged estimators;
// raw snapshot forms are exposed separately. One definition, applied
// identically everywhere. Snapshot magnetization itself lives on
// lattice.Lattice.Magnetization.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinlab/observable"
//
//	m, corr, err := observable.SpinStats(params, 0) // r = 0..L/2
//	exact := observable.ExactMagnetization(params.T, params.J)
//
// Performance: snapshot estimators are O(L²) (column forms O(L));
// accumulators add O(maxR·L²) per observed sweep.
package observable
