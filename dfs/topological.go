// Package dfs provides topological sorting of core.Graph.
//
// TopologicalSort computes a linear ordering of node positions such that for
// every edge u→v, u appears before v. Self-loops count as cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphfuzz/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T any] struct {
	graph *core.Graph[T]
	opts  topoOptions
	state []int // White/Gray/Black per node
	order []int // post-order
}

// TopologicalSort returns a topological ordering of all nodes of g.
// Roots are tried in position order, so the result is deterministic.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected (wrapped with the closing edge) if g has a cycle.
//   - ctx.Err() if the context is done.
func TopologicalSort[T any](g *core.Graph[T], options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.Len()
	sorter := &topoSorter[T]{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order is a topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter[T]) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[id] = Gray

	node, _ := t.graph.Node(id)
	for _, to := range node.Edges() {
		switch t.state[to] {
		case Gray:
			return fmt.Errorf("dfs: edge %d→%d: %w", id, to, ErrCycleDetected)
		case White:
			if err := t.visit(to); err != nil {
				return err
			}
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
