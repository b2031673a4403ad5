// Package dfs defines types and options for depth-first traversal of index
// graphs, including cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, full-graph (forest) traversal and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a node during traversal.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are fully explored.
)

// Unreached marks Depth and Parent entries of nodes the traversal never discovered.
const Unreached = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Reachable or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a node position.
	ErrStartOutOfRange = errors.New("dfs: start node out of range")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(node int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// explored (post-order), before appending to result.Order.
	OnExit func(node int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge target before recursing.
	// Return false to skip that edge.
	FilterNeighbor func(from, to int) bool

	// FullTraversal, if true, restarts from every unvisited node in position
	// order, covering the whole graph (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts edges skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(node int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips every edge from→to for which fn returns false.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited node, covering the whole graph.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// All slices are indexed by node position and have length g.Len().
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth holds each node's tree distance from its root, or Unreached.
	Depth []int

	// Parent holds the node each node was discovered from, or Unreached
	// for roots and undiscovered nodes.
	Parent []int

	// Visited flags which nodes were reached.
	Visited []bool

	// SkippedNeighbors reports how many edges FilterNeighbor rejected.
	SkippedNeighbors int
}
