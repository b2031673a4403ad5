// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_star.go: Star(n): the hub is the first appended node and owns one
// edge to each of the n-1 leaves, in leaf order.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Star returns a Constructor that appends a hub with n-1 leaves.
// Complexity: O(n).
func Star[T any](n int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if n < MinStarNodes {
			return builderErrorf(MethodStar, ErrTooFewVertices, "n=%d < min=%d", n, MinStarNodes)
		}
		hub := addNodes(g, data, n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			g.AddEdge(hub, leaf)
		}

		return nil
	}
}
