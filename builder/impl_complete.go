// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_complete.go: Complete(n): every ordered pair u≠v, emitted row by row.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Complete returns a Constructor that appends the complete directed graph K_n
// without self-loops.
// Complexity: O(n) nodes + O(n²) edges.
func Complete[T any](n int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if n < MinCompleteNodes {
			return builderErrorf(MethodComplete, ErrTooFewVertices, "n=%d < min=%d", n, MinCompleteNodes)
		}
		base := addNodes(g, data, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v {
					g.AddEdge(base+u, base+v)
				}
			}
		}

		return nil
	}
}
