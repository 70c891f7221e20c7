package umbrella

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spinlab/metropolis"
)

// Umbrella Sampling — biased exploration of rare magnetization states.
//
// Description:
//
//	Unbiased Metropolis sampling almost never visits magnetizations far from
//	the equilibrium peaks; the free-energy barrier between the two ordered
//	phases is exponentially suppressed. Umbrella sampling runs many biased
//	simulations ("windows"), each pinned near a target magnetization by a
//	harmonic potential U(m) = k·(m − m0)², so that together the windows tile
//	the whole magnetization range. The per-window histograms are later
//	recombined into one unbiased distribution by the wham package.
//
// State machine per window:
//
//	INIT (assign m0, k and a derived RNG stream)
//	  → EQUILIBRATE (n_eq biased sweeps, samples discarded)
//	  → MEASURE     (n_steps biased sweeps, one histogram count per sweep)
//	  → DONE
//
// Concurrency:
//
//	Windows are embarrassingly parallel: each owns its own lattice and random
//	stream, so Run executes them on an errgroup with no shared mutable state
//	beyond the pre-allocated result slots.
//
// Errors: configuration errors only, before any simulation work. A window
// whose histogram does not overlap its neighbors is flagged (CoverageGap),
// not failed.

// RunWindow executes a single biased window to completion and returns its
// histogram on the shared bins. Samples falling outside the binning range are
// clamped to the edge bins. Complexity: O((n_eq + n_steps)·L²).
func RunWindow(base metropolis.Params, spec WindowSpec, bins Binning) (Window, error) {
	if err := spec.Validate(); err != nil {
		return Window{}, err
	}
	if err := bins.Validate(); err != nil {
		return Window{}, err
	}
	s, err := metropolis.NewSampler(base)
	if err != nil {
		return Window{}, err
	}
	s.SetBias(metropolis.HarmonicBias{SpringK: spec.SpringK, Target: spec.Target})

	s.Equilibrate()
	hist := make([]float64, bins.Bins)
	for k := 0; k < base.MeasureSweeps; k++ {
		s.Sweep()
		hist[bins.Index(s.Magnetization())]++
	}

	return Window{Spec: spec, Hist: hist, Samples: base.MeasureSweeps}, nil
}

// Run executes every configured window, up to cfg.Parallelism concurrently,
// and returns the windows in input order. Each window derives an independent
// RNG stream from cfg.Base.Seed and its index, so results are deterministic
// regardless of scheduling. Adjacent windows (by target) whose occupied bins
// do not overlap are flagged with CoverageGap on both sides.
// Complexity: O(W·(n_eq + n_steps)·L² / min(W, Parallelism)) wall-clock.
func Run(ctx context.Context, cfg Config) ([]Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	windows := make([]Window, len(cfg.Windows))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for idx, spec := range cfg.Windows {
		idx, spec := idx, spec
		g.Go(func() error {
			// The sweep loop never suspends; honor cancellation between windows.
			if err := ctx.Err(); err != nil {
				return err
			}
			p := cfg.Base
			p.Seed = metropolis.DeriveSeed(cfg.Base.Seed, uint64(idx))
			w, err := RunWindow(p, spec, cfg.Bins)
			if err != nil {
				return err
			}
			windows[idx] = w

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, pair := range DetectCoverageGaps(windows) {
		windows[pair[0]].CoverageGap = true
		windows[pair[1]].CoverageGap = true
	}

	return windows, nil
}

// DetectCoverageGaps returns the index pairs of target-adjacent windows whose
// occupied bin ranges do not overlap. Such gaps degrade WHAM convergence and
// leave the combined distribution unconstrained between the pair; callers
// typically respond by adding windows or softening springs.
// Complexity: O(W·log W + W·Bins).
func DetectCoverageGaps(windows []Window) [][2]int {
	if len(windows) < 2 {
		return nil
	}
	order := make([]int, len(windows))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return windows[order[a]].Spec.Target < windows[order[b]].Spec.Target
	})

	var gaps [][2]int
	for k := 0; k+1 < len(order); k++ {
		lo, hi := order[k], order[k+1]
		_, hiEnd, okLo := occupiedRange(windows[lo].Hist)
		loStart, _, okHi := occupiedRange(windows[hi].Hist)
		// Empty histograms are degenerate coverage gaps as well.
		if !okLo || !okHi || hiEnd < loStart {
			gaps = append(gaps, [2]int{lo, hi})
		}
	}

	return gaps
}

// occupiedRange returns the first and last bin holding any count.
func occupiedRange(hist []float64) (first, last int, ok bool) {
	first, last = -1, -1
	for i, c := range hist {
		if c > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	return first, last, first >= 0
}
