// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the invariant check.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

import "fmt"

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph[T]) Len() int { return len(g.nodes) }

// EdgeCount returns the total number of outgoing edges over all nodes.
// Complexity: O(V).
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for i := range g.nodes {
		total += len(g.nodes[i].edges)
	}

	return total
}

// Node returns a mutable view of the node at index i.
//
// Behavior highlights:
//   - The view is only valid until the next structural edit; positions shift on removal.
//   - Callers may modify Data; edges are reachable read-only via Node.Edges.
//
// Returns:
//   - (*Node[T], true) for 0 ≤ i < Len(); (nil, false) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[T]) Node(i int) (*Node[T], bool) {
	if !g.inRange(i) {
		return nil, false
	}

	return &g.nodes[i], true
}

// Stats produces a snapshot of structural counters.
// Complexity: O(V+E).
func (g *Graph[T]) Stats() GraphStats {
	st := GraphStats{NodeCount: len(g.nodes)}
	var i int
	for i = range g.nodes {
		deg := len(g.nodes[i].edges)
		st.EdgeCount += deg
		if deg > st.MaxOutDegree {
			st.MaxOutDegree = deg
		}
		for _, t := range g.nodes[i].edges {
			if t == i {
				st.SelfLoops++
			}
		}
	}

	return st
}

// Validate checks structural validity: every edge target is a valid node index.
//
// Implementation:
//   - Stage 1: Reject a nil receiver with ErrNilGraph.
//   - Stage 2: Scan each node's edge list in order; the first bad target is reported.
//
// Returns:
//   - error: nil if the graph is valid.
//
// Errors:
//   - ErrNilGraph: receiver is nil.
//   - ErrEdgeOutOfRange: wrapped with "node i slot s → t" context.
//
// Complexity:
//   - Time O(V+E), Space O(1).
//
// Notes:
//   - After any public method returns this must hold; a failure indicates a
//     broken invariant or a graph rebuilt from untrusted data.
func (g *Graph[T]) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	n := len(g.nodes)
	for i := range g.nodes {
		for s, t := range g.nodes[i].edges {
			if t < 0 || t >= n {
				return fmt.Errorf("node %d slot %d → %d (nodes=%d): %w", i, s, t, n, ErrEdgeOutOfRange)
			}
		}
	}

	return nil
}

// inRange reports whether i addresses an existing node.
func (g *Graph[T]) inRange(i int) bool {
	return i >= 0 && i < len(g.nodes)
}
