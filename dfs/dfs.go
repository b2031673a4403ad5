// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, where edges are node positions.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Self-loops and parallel edges are followed once; a visited node is never re-entered
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartOutOfRange        if start is not a node position (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphfuzz/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any] struct {
	graph *core.Graph[T]
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers every
// node in position order; otherwise it starts only from start.
// On abort the partial result is returned alongside the error.
func DFS[T any](g *core.Graph[T], start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := g.Len()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start %d (nodes=%d): %w", start, n, ErrStartOutOfRange)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   filled(n, Unreached),
		Parent:  filled(n, Unreached),
		Visited: make([]bool, n),
	}
	walker := &dfsWalker[T]{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits node id at the given depth, recursing into its edge targets.
func (w *dfsWalker[T]) traverse(id, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Explore each edge slot in order
	node, _ := w.graph.Node(id)
	for _, nid := range node.Edges() {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
			// A depth-limited child stays undiscovered.
			if !w.res.Visited[nid] {
				w.res.Parent[nid] = Unreached
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Reachable returns, in ascending order, every node reachable from start
// (start included).
func Reachable[T any](g *core.Graph[T], start int) ([]int, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(res.Order))
	for v, ok := range res.Visited {
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
