// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfuzz/core"
)

// fixturePayloads are the node payloads of the eight-node reference graph.
var fixturePayloads = []int8{63, 3, -56, 100, -100, -78, 46, 120}

// fixtureEdges are the edges of the reference graph: 0→{1,2} 1→{3,4} 2→{5,6} 3→{7}.
var fixtureEdges = [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}, {3, 7}}

// buildFixture returns the eight-node reference graph (complexity 14).
func buildFixture(t testing.TB) *core.Graph[int8] {
	t.Helper()
	g := core.New[int8]()
	for _, p := range fixturePayloads {
		g.AddNode(p)
	}
	for _, e := range fixtureEdges {
		require.True(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// edgesOf snapshots every node's edge list; empty lists are returned as empty slices.
func edgesOf[T any](g *core.Graph[T]) [][]int {
	out := make([][]int, g.Len())
	for i := range out {
		n, _ := g.Node(i)
		out[i] = n.Edges()
	}

	return out
}

// payloadsOf snapshots the payload sequence.
func payloadsOf[T any](g *core.Graph[T]) []T {
	out := make([]T, g.Len())
	for i := range out {
		n, _ := g.Node(i)
		out[i] = n.Data
	}

	return out
}

// complexityOf is nodes + edges, the metric the generator budgets against.
func complexityOf[T any](g *core.Graph[T]) int {
	return g.Len() + g.EdgeCount()
}
