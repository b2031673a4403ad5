// Package bfs is a breadth-first search over graphfuzz graphs.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start position.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-node distance (edges) from start, or Unreached
//   - Parent: per-node predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are enqueued in edge-slot order, so the visit sequence is a
//	pure function of the graph. Self-loops and parallel edges never enqueue
//	a node twice.
//
// Complexity (V = nodes, E = edge slots)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
