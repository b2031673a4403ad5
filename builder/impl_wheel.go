// SPDX-License-Identifier: MIT
// Package: graphfuzz/builder
//
// impl_wheel.go: Wheel(n) constructor.
//
// Layout:
//   • hub = first appended node; rim = the next n-1 nodes.
//   • Rim ring edges first (r_i → r_{i+1 mod n-1}), then spokes hub → r_i.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import "github.com/katalvlaran/graphfuzz/core"

// Wheel returns a Constructor that appends a rim cycle of n-1 nodes plus a hub.
func Wheel[T any](n int) Constructor[T] {
	return func(g *core.Graph[T], data func(int) T, _ builderConfig) error {
		if n < MinWheelNodes {
			return builderErrorf(MethodWheel, ErrTooFewVertices, "n=%d < min=%d", n, MinWheelNodes)
		}
		hub := addNodes(g, data, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			g.AddEdge(hub+1+i, hub+1+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			g.AddEdge(hub, hub+1+i)
		}

		return nil
	}
}
