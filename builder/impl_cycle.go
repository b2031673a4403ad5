// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_cycle.go: Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); Cycle(1) is a single self-loop.
//   • Emits edges in stable order i → (i+1)%n for i = 0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Cycle returns a Constructor that appends a directed ring of n nodes.
func Cycle[T any](n int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if n < MinCycleNodes {
			return builderErrorf(MethodCycle, ErrTooFewVertices, "n=%d < min=%d", n, MinCycleNodes)
		}
		base := addNodes(g, data, n)
		for i := 0; i < n; i++ {
			g.AddEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
