// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_path.go: Path(n): b→b+1→…→b+n-1.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Path returns a Constructor that appends a directed chain of n nodes.
// Complexity: O(n) nodes + O(n-1) edges.
func Path[T any](n int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if n < MinPathNodes {
			return builderErrorf(MethodPath, ErrTooFewVertices, "n=%d < min=%d", n, MinPathNodes)
		}
		base := addNodes(g, data, n)
		for i := 0; i < n-1; i++ {
			g.AddEdge(base+i, base+i+1)
		}

		return nil
	}
}
