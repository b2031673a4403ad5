// Package dfs implements depth-first traversal, reachability, cycle detection
// and topological sort on a core.Graph, whose edges are node positions.
//
// What:
//
//   - DFS: explores as far as possible along each edge list before
//     backtracking. Supports pre-/post-order hooks, cancellation via
//     context.Context, depth limiting, edge filtering and forest traversal.
//   - Reachable: the sorted set of nodes reachable from a start node.
//   - DetectCycles: reports back-edge cycles with White/Gray/Black coloring
//     and canonical signature deduplication.
//   - TopologicalSort: a linear ordering of a DAG's nodes, or ErrCycleDetected.
//
// Why:
//   - Summarize generated inputs (graphfuzz inspect): how much of a graph
//     hangs off node 0, whether it is acyclic, which loops it contains.
//
// Complexity:
//
//   - DFS, Reachable, TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E+C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartOutOfRange   start index is not a node position
//   - ErrCycleDetected     cycle discovered by TopologicalSort
//   - context.Canceled     traversal canceled via context
//   - hook errors          propagated from OnVisit or OnExit
package dfs
