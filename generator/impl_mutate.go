// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// impl_mutate.go: weighted single-step mutation and the operator handlers.
//
// Implementation:
//   Stage 1: Draw an operator from the cumulative table.
//   Stage 2: Run its handler; stop on the first one that reports a change.
//   Stage 3: After NumOperators fruitless draws, report false.
//
// Every handler checks its own precondition and draws indices only from the
// then-current valid range, so no handler can break structural validity.

package generator

import (
	"log/slog"

	"github.com/katalvlaran/graphfuzz/core"
)

// Mutate applies one weighted mutation step to g in place.
// It returns false when every draw in the budget was inapplicable to g's shape;
// the caller may retry or keep g unchanged.
//
// Complexity: O(NumOperators · (V+E)) worst case (RemoveNode repair dominates).
func (gg *GraphGenerator[T]) Mutate(g *core.Graph[T], spareComplexity float64) bool {
	if g == nil {
		return false
	}

	for attempt := 0; attempt < NumOperators; attempt++ {
		op := gg.table.pick(gg.rng)
		if gg.Apply(op, g, spareComplexity) {
			return true
		}
	}

	gg.metrics.incExhausted()
	gg.logger.Debug("mutation budget exhausted",
		slog.Int("nodes", g.Len()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("attempts", NumOperators))

	return false
}

// Apply runs the handler of a single operator on g and reports whether it
// changed g. Unknown operators and nil graphs report false.
func (gg *GraphGenerator[T]) Apply(op Operator, g *core.Graph[T], spareComplexity float64) bool {
	if g == nil {
		return false
	}

	var ok bool
	switch op {
	case OpAddNode:
		ok = gg.addNode(g, spareComplexity)
	case OpRemoveNode:
		ok = gg.removeNode(g)
	case OpMutateNodeData:
		ok = gg.mutateNodeData(g, spareComplexity)
	case OpAddEdge:
		ok = gg.addEdge(g)
	case OpRemoveEdge:
		ok = gg.removeEdge(g)
	case OpMoveEdge:
		ok = gg.moveEdge(g)
	case OpAddFriend:
		ok = gg.addFriend(g, spareComplexity)
	case OpMoveNode:
		ok = gg.moveNode(g)
	default:
		return false
	}
	gg.metrics.observeOperator(op, ok)

	return ok
}

func (gg *GraphGenerator[T]) addNode(g *core.Graph[T], spare float64) bool {
	g.AddNode(gg.payloads.NewInput(spare))

	return true
}

func (gg *GraphGenerator[T]) removeNode(g *core.Graph[T]) bool {
	if g.Len() == 0 {
		return false
	}

	return g.RemoveNode(gg.randIndex(g.Len()))
}

func (gg *GraphGenerator[T]) mutateNodeData(g *core.Graph[T], spare float64) bool {
	if g.Len() == 0 {
		return false
	}
	n, _ := g.Node(gg.randIndex(g.Len()))

	return gg.payloads.Mutate(&n.Data, spare)
}

// addEdge allows self-loops: from and to are drawn independently.
func (gg *GraphGenerator[T]) addEdge(g *core.Graph[T]) bool {
	if g.Len() == 0 {
		return false
	}
	from := gg.randIndex(g.Len())
	to := gg.randIndex(g.Len())

	return g.AddEdge(from, to)
}

// removeEdge deletes one slot without touching the target node.
func (gg *GraphGenerator[T]) removeEdge(g *core.Graph[T]) bool {
	from, slot, ok := gg.pickEdgeSlot(g)
	if !ok {
		return false
	}

	return g.RemoveEdgeAt(from, slot)
}

// moveEdge retargets one slot; the new target may equal the old one.
func (gg *GraphGenerator[T]) moveEdge(g *core.Graph[T]) bool {
	from, slot, ok := gg.pickEdgeSlot(g)
	if !ok {
		return false
	}

	return g.SetEdgeAt(from, slot, gg.randIndex(g.Len()))
}

func (gg *GraphGenerator[T]) addFriend(g *core.Graph[T], spare float64) bool {
	if g.Len() == 0 {
		return false
	}
	from := gg.randIndex(g.Len())
	g.AddNode(gg.payloads.NewInput(spare))

	return g.AddEdge(from, g.Len()-1)
}

// moveNode reports false when both draws coincide.
func (gg *GraphGenerator[T]) moveNode(g *core.Graph[T]) bool {
	if g.Len() < 2 {
		return false
	}
	i := gg.randIndex(g.Len())
	j := gg.randIndex(g.Len())

	return g.Swap(i, j)
}

// pickEdgeSlot chooses a node uniformly among those with at least one edge,
// then one of its slots uniformly.
func (gg *GraphGenerator[T]) pickEdgeSlot(g *core.Graph[T]) (from, slot int, ok bool) {
	candidates := nodesWithEdges(g)
	if len(candidates) == 0 {
		return 0, 0, false
	}
	from = candidates[gg.randIndex(len(candidates))]
	n, _ := g.Node(from)

	return from, gg.randIndex(n.Degree()), true
}

func nodesWithEdges[T any](g *core.Graph[T]) []int {
	var out []int
	for i := 0; i < g.Len(); i++ {
		if n, _ := g.Node(i); n.Degree() > 0 {
			out = append(out, i)
		}
	}

	return out
}
