// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi over ordered pairs.
//
// Implementation:
//   Stage 1: Validate n ≥ 1, p ∈ [0,1] and the presence of cfg.rng.
//   Stage 2: Append n nodes.
//   Stage 3: For u, then v, in ascending order draw one Float64 per candidate
//            pair and keep u→v when the draw is below p. Self-pairs are
//            candidates only under WithSelfLoops.
//
// Determinism:
//   • A fixed seed fixes the draw sequence, hence the edge set and slot order.
//
// Complexity: O(n²) draws.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// RandomSparse returns a Constructor that appends n nodes linked with probability p.
func RandomSparse[T any](n int, p float64) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, cfg builderConfig) error {
		if n < 1 {
			return builderErrorf(MethodRandomSparse, ErrTooFewVertices, "n=%d < min=1", n)
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return builderErrorf(MethodRandomSparse, ErrInvalidProbability, "p=%v", p)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		base := addNodes(g, data, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v && !cfg.selfLoops {
					continue
				}
				if cfg.rng.Float64() < p {
					g.AddEdge(base+u, base+v)
				}
			}
		}

		return nil
	}
}
