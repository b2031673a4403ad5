// Package core provides the positional, index-addressed directed graph that
// graph-shaped fuzz inputs are built from.
//
// A Graph[T] is an ordered sequence of nodes. Each Node[T] carries a payload
// of type T and an ordered list of outgoing edge targets expressed as node
// indices. Identity of a node IS its current position: there is no stable node
// identifier independent of position, so any *Node[T] obtained through
// Graph.Node must not be retained across a structural edit.
//
// Structural validity:
//
//	For every node, every edge target t satisfies 0 ≤ t < Len() once any
//	public method returns. Self-loops and parallel edges are permitted.
//
// Edit primitives (all report success with a bool, never panic):
//
//	AddNode(data)            // O(1) amortized; always succeeds
//	RemoveNode(i)            // O(V+E); deletes edges into i, renumbers targets > i
//	AddEdge(from, to)        // O(1) amortized
//	RemoveEdge(from, to)     // O(V+E); removes first from→to edge AND node `to`
//
// Positional helpers used by mutation operators:
//
//	Swap(i, j)               // exchange node positions, edges are not renumbered
//	RemoveEdgeAt(from, slot) // plain edge deletion by slot
//	SetEdgeAt(from, slot, to)// retarget one edge slot
//
// Index-shift policy:
//
//	RemoveNode renumbers every surviving edge target greater than the removed
//	index (target-1), so edges keep pointing at the same logical node after the
//	shift. Edges into the removed node are deleted from every edge list, not
//	just the first occurrence per node.
//
// Concurrency:
//
//	A Graph is owned by exactly one mutator at a time. It carries no locks;
//	callers that share a graph across goroutines must synchronize externally.
//
// Errors:
//
//	ErrEdgeOutOfRange   - Validate found an edge target outside [0, Len()).
//	ErrNilGraph         - a nil *Graph was passed where a graph is required.
package core
