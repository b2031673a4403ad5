// SPDX-License-Identifier: MIT
// Package: graphfuzz/core
//
// types.go: Graph, Node, sentinel errors and the constructor.
//
// Design:
//   • Node identity is its position in Graph.nodes.
//   • Edge targets live in the owning node as plain indices.
//   • Storage is unexported; mutation flows through the edit primitives only.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEdgeOutOfRange indicates that an edge target is not a valid node index.
	ErrEdgeOutOfRange = errors.New("core: edge target out of range")

	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Node is one element of a Graph: a payload plus its outgoing edge targets.
//
// Data may be mutated freely through the pointer returned by Graph.Node.
// The edge list is owned by the Graph and can only change through Graph
// methods, which keeps every target a valid index.
type Node[T any] struct {
	// Data is the payload produced by the payload generator.
	Data T

	// edges holds outgoing targets in insertion order; duplicates and self-loops allowed.
	edges []int
}

// Edges returns a copy of the node's outgoing edge targets in order.
// Complexity: O(deg).
func (n *Node[T]) Edges() []int {
	out := make([]int, len(n.edges))
	copy(out, n.edges)

	return out
}

// Degree returns the number of outgoing edges (parallel edges counted).
func (n *Node[T]) Degree() int { return len(n.edges) }

// Graph is an ordered sequence of nodes addressed by position.
// The zero value is an empty, ready-to-use graph.
type Graph[T any] struct {
	nodes []Node[T]
}

// New returns an empty graph (zero nodes).
// Complexity: O(1).
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// GraphStats is a read-only snapshot of structural counters.
type GraphStats struct {
	// NodeCount is the number of nodes.
	NodeCount int
	// EdgeCount is the total number of outgoing edges over all nodes.
	EdgeCount int
	// SelfLoops counts edges whose target equals their source.
	SelfLoops int
	// MaxOutDegree is the largest edge-list length of any node.
	MaxOutDegree int
}
